package bookingRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.mongodb.org/mongo-driver/bson"
)

func TestOverlapFilter(t *testing.T) {
	t.Run("symmetric interval intersection", func(t *testing.T) {
		filter := overlapFilter("car-1", "2025-06-02", "2025-06-04", "")

		assert.Equal(t, "car-1", filter["car_id"])
		assert.Equal(t, bson.M{"$lte": "2025-06-04"}, filter["rental_start_date"])
		assert.Equal(t, bson.M{"$gte": "2025-06-02"}, filter["rental_end_date"])
		_, hasExclusion := filter["id"]
		assert.False(t, hasExclusion)
	})

	t.Run("excludes the booking being rescheduled", func(t *testing.T) {
		filter := overlapFilter("car-1", "2025-06-02", "2025-06-04", "b-1")
		assert.Equal(t, bson.M{"$ne": "b-1"}, filter["id"])
	})
}
