package bookingRepo

import (
	"fmt"
	"time"

	"drivehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// overlapFilter builds the interval-intersection predicate for a car and
// date range: existing.start <= new.end AND existing.end >= new.start.
// Dates are "YYYY-MM-DD" strings, so lexicographic order is chronological.
func overlapFilter(carID, startDate, endDate, excludeID string) bson.M {
	filter := bson.M{
		"car_id":            carID,
		"rental_start_date": bson.M{"$lte": endDate},
		"rental_end_date":   bson.M{"$gte": startDate},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

// FindOverlapping returns bookings for the car whose date range intersects
// [startDate, endDate], optionally excluding one booking id.
func (r *MongoBookingRepo) FindOverlapping(carID, startDate, endDate, excludeID string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, overlapFilter(carID, startDate, endDate, excludeID))
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping bookings for car %s: %w", carID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode overlapping bookings: %w", err)
	}
	return bookings, nil
}

// GetByUser returns all bookings for a user with the referenced car and
// showroom expanded inline. The showroom password is projected out.
func (r *MongoBookingRepo) GetByUser(userID string) ([]models.BookingDetail, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"user_id": userID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "cars",
			"localField":   "car_id",
			"foreignField": "id",
			"as":           "car",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "showrooms",
			"localField":   "showroom_id",
			"foreignField": "id",
			"as":           "showroom",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$car", "preserveNullAndEmptyArrays": true}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$showroom", "preserveNullAndEmptyArrays": true}}},
		bson.D{{Key: "$project", Value: bson.M{"showroom.password": 0}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var details []models.BookingDetail
	if err := cursor.All(ctx, &details); err != nil {
		return nil, fmt.Errorf("failed to decode booking details: %w", err)
	}
	return details, nil
}
