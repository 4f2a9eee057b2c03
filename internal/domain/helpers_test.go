package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// newTestID builds a distinct, non-zero ObjectID for tests.
func newTestID(b byte) primitive.ObjectID {
	var id primitive.ObjectID
	id[11] = b
	return id
}
