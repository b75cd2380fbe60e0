package eamvu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusColorKeepsBothCasings(t *testing.T) {
	assert.Equal(t, "#F59E0B", StatusColor("SUBMITTED_TO_COPS"))
	assert.Equal(t, "#F59E0B", StatusColor("submitted_to_cops"))
	assert.Equal(t, "#3B82F6", StatusColor("assigned_to_eavmu_officer"))
}

func TestColorLookupsNeverFail(t *testing.T) {
	assert.Equal(t, FallbackColor, StatusColor("unknown-value"))
	assert.Equal(t, FallbackColor, StatusColor(""))
	assert.Equal(t, FallbackColor, PriorityColor("unknown-value"))
	assert.Equal(t, FallbackColor, DocumentStatusColor("unknown-value"))
}

func TestPriorityColorIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, "#DC2626", PriorityColor("high"))
	assert.Equal(t, "#DC2626", PriorityColor("High"))
	assert.Equal(t, "#10B981", PriorityColor("LOW"))
}

func TestDocumentStatusColorIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, "#059669", DocumentStatusColor("Verified"))
	assert.Equal(t, "#DC2626", DocumentStatusColor("rejected"))
}

func TestStatusOptionTables(t *testing.T) {
	assert.Len(t, EAMVUStatusOptions, 4)
	assert.Len(t, DocumentStatusOptions, 4)

	for _, option := range EAMVUStatusOptions {
		assert.NotEmpty(t, option.Value)
		assert.NotEmpty(t, option.Label)
		assert.NotEmpty(t, option.Color)
	}
}
