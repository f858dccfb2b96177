package mq

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

func TestBuildProduceRecord(t *testing.T) {
	t.Run("Should map message fields", func(t *testing.T) {
		rec := buildProduceRecord(ProduceMsg{
			Topic:        "product.created",
			Headers:      map[string]string{"traceparent": "00-abc", "X-Correlation-ID": "cid"},
			Payload:      []byte(`{"product_id":1}`),
			PartitionKey: ptr.New("1"),
		})

		assert.Equal(t, "product.created", rec.Topic)
		assert.Equal(t, []byte(`{"product_id":1}`), rec.Value)
		assert.Equal(t, []byte("1"), rec.Key)
		if assert.Len(t, rec.Headers, 2) {
			assert.Equal(t, "X-Correlation-ID", rec.Headers[0].Key)
			assert.Equal(t, "traceparent", rec.Headers[1].Key)
		}
	})

	t.Run("Should leave key empty without partition key", func(t *testing.T) {
		rec := buildProduceRecord(ProduceMsg{Topic: "product.deleted"})

		assert.Nil(t, rec.Key)
		assert.Empty(t, rec.Headers)
	})
}
