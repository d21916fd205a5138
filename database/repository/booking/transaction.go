package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"drivehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateWithCarHold inserts the booking and flips the car to Rented Out in a
// single transaction. The overlap re-check and the conditional availability
// update both run inside the session, so two concurrent requests for the
// same car cannot both commit.
func (r *MongoBookingRepo) CreateWithCarHold(ctx context.Context, booking *models.Booking) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := overlapFilter(booking.CarID, booking.RentalStartDate, booking.RentalEndDate, "")
		count, err := r.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrOverlap
		}

		now := time.Now()
		booking.CreatedAt = now
		booking.UpdatedAt = now
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}

		carFilter := bson.M{"id": booking.CarID, "availability": models.CarAvailable}
		carUpdate := bson.M{"$set": bson.M{"availability": models.CarRentedOut, "updated_at": now}}
		res, err := r.carColl.UpdateOne(sc, carFilter, carUpdate)
		if err != nil {
			return fmt.Errorf("car hold failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrCarUnavailable
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}
	return nil
}

// UpdateWithOverlapGuard persists new rental fields for an existing booking,
// re-checking the overlap window against other bookings on the same car
// inside the same transaction.
func (r *MongoBookingRepo) UpdateWithOverlapGuard(ctx context.Context, booking *models.Booking) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := overlapFilter(booking.CarID, booking.RentalStartDate, booking.RentalEndDate, booking.ID)
		count, err := r.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrOverlap
		}

		booking.UpdatedAt = time.Now()
		update := bson.M{"$set": bson.M{
			"rental_start_date": booking.RentalStartDate,
			"rental_start_time": booking.RentalStartTime,
			"rental_end_date":   booking.RentalEndDate,
			"rental_end_time":   booking.RentalEndTime,
			"total_price":       booking.TotalPrice,
			"updated_at":        booking.UpdatedAt,
		}}
		res, err := r.coll.UpdateOne(sc, bson.M{"id": booking.ID}, update)
		if err != nil {
			return fmt.Errorf("update booking failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}
	return nil
}
