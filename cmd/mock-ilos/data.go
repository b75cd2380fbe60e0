package main

import "eamvu/ilos"

// Sample data set, shaped exactly like the production backend's payloads
// (snake_case fields, mixed status casing, amounts sometimes quoted).

func sampleApplications() []ilos.RawApplicationDetails {
	return []ilos.RawApplicationDetails{
		{
			RawApplication: ilos.RawApplication{
				ID:              "1",
				LosID:           "LOS-2024-001234",
				ApplicantName:   "Muhammad Ali Khan",
				ApplicantPhone:  "+92-300-1234567",
				LoanType:        "CashPlus Loan",
				LoanAmount:      "2500000",
				Status:          "SUBMITTED_BY_SPU",
				Priority:        "High",
				AssignedOfficer: "agent-001",
				CreatedAt:       "2024-01-15T09:30:00Z",
				Branch:          "Gulshan-e-Iqbal Branch",
				ApplicationType: "CashPlus",
				Address:         "House 123, Block A, Gulshan-e-Iqbal, Karachi",
				Documents: []ilos.RawDocument{
					{ID: "1", Name: "CNIC Front & Back", Type: "CNIC", Status: "pending", Required: true},
					{ID: "2", Name: "Last 3 Months Salary Slips", Type: "Salary Slip", Status: "pending", Required: true},
					{ID: "3", Name: "Last 6 Months Bank Statement", Type: "Bank Statement", Status: "pending", Required: true},
				},
			},
			FormData: &ilos.RawFormData{
				Applicant: ilos.RawApplicantInfo{
					CNIC:          "42101-1234567-1",
					DateOfBirth:   "1988-04-12",
					FatherName:    "Akbar Khan",
					MaritalStatus: "Married",
					Education:     "Bachelors",
					Dependents:    "3",
				},
				Employment: ilos.RawEmploymentInfo{
					Employer:      "ABC Company",
					Designation:   "Accounts Manager",
					YearsEmployed: "6",
					MonthlyIncome: "185000",
					OfficeAddress: "Shahrah-e-Faisal, Karachi",
					OfficePhone:   "+92-21-34567890",
				},
				Financial: ilos.RawFinancialInfo{
					BankName:       "UBL",
					AccountNumber:  "0123456789",
					AverageBalance: "420000",
					ExistingLoans:  "0",
				},
				References: []ilos.RawReference{
					{Name: "Imran Siddiqui", CNIC: "42101-7654321-3", Phone: "+92-333-1112223", Relation: "Colleague", Address: "DHA Phase 5, Karachi"},
				},
			},
		},
		{
			RawApplication: ilos.RawApplication{
				ID:              "2",
				LosID:           "LOS-2024-001235",
				ApplicantName:   "Fatima Ahmed",
				ApplicantPhone:  "+92-321-9876543",
				LoanType:        "Personal Auto Loan",
				LoanAmount:      "800000",
				Status:          "assigned_to_eavmu_officer",
				Priority:        "Medium",
				AssignedOfficer: "agent-002",
				CreatedAt:       "2024-01-14T14:05:00Z",
				Branch:          "DHA Branch",
				ApplicationType: "AutoLoan",
				Address:         "Flat 456, DHA Phase 2, Karachi",
				Documents: []ilos.RawDocument{
					{ID: "4", Name: "CNIC Front & Back", Type: "CNIC", Status: "collected", Required: true},
					{ID: "5", Name: "Vehicle Registration Book", Type: "Other", Status: "pending", Required: true},
					{ID: "6", Name: "Insurance Documents", Type: "Other", Status: "pending", Required: true},
				},
			},
		},
		{
			RawApplication: ilos.RawApplication{
				ID:              "3",
				LosID:           "LOS-2024-001236",
				ApplicantName:   "Hassan Raza",
				ApplicantPhone:  "+92-333-5555555",
				LoanType:        "SME ASAAN Loan",
				LoanAmount:      "5000000",
				Status:          "submitted_to_cops",
				Priority:        "high",
				AssignedOfficer: "agent-001",
				CreatedAt:       "2024-01-16T11:45:00Z",
				Branch:          "Clifton Branch",
				ApplicationType: "SMEASAAN",
				Address:         "Office 789, Clifton Commercial Area, Karachi",
				Documents: []ilos.RawDocument{
					{ID: "7", Name: "CNIC Front & Back", Type: "CNIC", Status: "pending", Required: true},
					{ID: "8", Name: "Business Registration Certificate", Type: "Other", Status: "pending", Required: true},
					{ID: "9", Name: "Last 2 Years Tax Returns", Type: "Other", Status: "pending", Required: true},
					{ID: "10", Name: "Property Documents (if collateral)", Type: "Property Documents", Status: "pending", Required: false},
				},
			},
		},
		{
			RawApplication: ilos.RawApplication{
				ID:              "4",
				LosID:           "LOS-2024-001237",
				ApplicantName:   "Ayesha Malik",
				LoanType:        "Classic Credit Card Loan",
				LoanAmount:      "500000",
				Status:          "RETURNED",
				Priority:        "Low",
				AssignedOfficer: "agent-004",
				CreatedAt:       "2024-01-17T08:20:00Z",
				Branch:          "Johar Town Branch",
				ApplicationType: "ClassicCreditCard",
				Address:         "Apartment 12, F-Block, Johar Town, Lahore",
				Documents: []ilos.RawDocument{
					{ID: "11", Name: "CNIC Front & Back", Type: "CNIC", Status: "pending", Required: true},
					{ID: "12", Name: "Employment Letter", Type: "Other", Status: "pending", Required: true},
					{ID: "13", Name: "Last 3 Months Bank Statement", Type: "Bank Statement", Status: "pending", Required: true},
				},
			},
		},
		{
			RawApplication: ilos.RawApplication{
				ID:              "5",
				LosID:           "LOS-2024-001238",
				ApplicantName:   "Tariq Ahmed",
				ApplicantPhone:  "+92-345-8888888",
				LoanType:        "Ameen Drive Loan",
				LoanAmount:      "1200000",
				Status:          "SUBMITTED_TO_CIU",
				Priority:        "medium",
				AssignedOfficer: "agent-005",
				CreatedAt:       "2024-01-13T16:10:00Z",
				Branch:          "Model Town Branch",
				ApplicationType: "AmeenDrive",
				Address:         "Shop 45, Main Market, Model Town, Islamabad",
				Documents: []ilos.RawDocument{
					{ID: "14", Name: "CNIC Front & Back", Type: "CNIC", Status: "collected", Required: true},
					{ID: "15", Name: "Driving License", Type: "Other", Status: "collected", Required: true},
					{ID: "16", Name: "Vehicle Documents", Type: "Other", Status: "pending", Required: true},
				},
			},
		},
	}
}

func sampleComments() map[string][]ilos.RawComment {
	return map[string][]ilos.RawComment{
		"LOS-2024-001234": {
			{
				ID:         "1",
				Author:     "SPU Analyst",
				Text:       "Applicant works at ABC Company. Visit during office hours.",
				CreatedAt:  "2024-01-15T10:00:00Z",
				Department: "SPU",
				FieldName:  "employment",
			},
		},
		"LOS-2024-001235": {
			{
				ID:          "2",
				Author:      "SPU Analyst",
				CommentText: "Vehicle is Honda City 2020 model. Verify ownership documents.",
				Date:        "2024-01-14T15:00:00Z",
				Department:  "SPU",
				FieldName:   "vehicle",
			},
		},
	}
}

func sampleAssignments() []ilos.AgentAssignment {
	return []ilos.AgentAssignment{
		{AgentID: "agent-001", AgentName: "Ahmad Hassan", LosID: "LOS-2024-001234", AssignedAt: "2024-01-15T09:35:00Z"},
		{AgentID: "agent-002", AgentName: "Fatima Ali", LosID: "LOS-2024-001235", AssignedAt: "2024-01-14T14:10:00Z"},
		{AgentID: "agent-001", AgentName: "Ahmad Hassan", LosID: "LOS-2024-001236", AssignedAt: "2024-01-16T11:50:00Z"},
		{AgentID: "agent-004", AgentName: "Aisha Sheikh", LosID: "LOS-2024-001237", AssignedAt: "2024-01-17T08:25:00Z"},
		{AgentID: "agent-005", AgentName: "Sara Ahmed", LosID: "LOS-2024-001238", AssignedAt: "2024-01-13T16:15:00Z"},
	}
}

func sampleCustomers() map[string]ilos.CustomerStatusResponse {
	return map[string]ilos.CustomerStatusResponse{
		"42101-1234567-1": {CNIC: "42101-1234567-1", Status: "ETB", ConsumerID: "CIF-778899"},
		"35202-9988776-5": {CNIC: "35202-9988776-5", Status: "ETB", ConsumerID: "CIF-112233"},
	}
}

func sampleCIFs() map[string]ilos.CIFResponse {
	return map[string]ilos.CIFResponse{
		"CIF-778899": {
			ConsumerID:  "CIF-778899",
			FullName:    "Muhammad Ali Khan",
			CNIC:        "42101-1234567-1",
			DateOfBirth: "1988-04-12",
			Address:     "House 123, Block A, Gulshan-e-Iqbal, Karachi",
			Phone:       "+92-300-1234567",
			Segment:     "Salaried",
		},
		"CIF-112233": {
			ConsumerID:  "CIF-112233",
			FullName:    "Nadia Hussain",
			CNIC:        "35202-9988776-5",
			DateOfBirth: "1979-09-23",
			Address:     "Street 8, G-10/2, Islamabad",
			Phone:       "+92-301-5556677",
			Segment:     "Self-Employed",
		},
	}
}
