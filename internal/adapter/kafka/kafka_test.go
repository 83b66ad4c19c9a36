package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coastwatch/threat-aggregation-service/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	rec := domain.AuthorityRecommendation{
		ThreatID:  "threat-1",
		Authority: domain.AuthorityCoastGuard,
		Urgency:   domain.SeverityCritical,
		Message:   "Critical Storm Surge alert for Chennai. Confidence: 0.82.",
		RecommendedActions: []string{
			"Deploy rescue vessels to affected coastal areas",
		},
	}

	msg, err := serializeToMessage(rec)
	require.NoError(t, err)

	assert.Equal(t, []byte("threat-1"), msg.Key)
	assert.Contains(t, string(msg.Value), `"authority_type":"coast_guard"`)
	assert.Contains(t, string(msg.Value), `"urgency":"critical"`)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "authority_type", msg.Headers[0].Key)
	assert.Equal(t, []byte("coast_guard"), msg.Headers[0].Value)
	assert.Equal(t, "urgency", msg.Headers[1].Key)
	assert.Equal(t, []byte("critical"), msg.Headers[1].Value)
}
