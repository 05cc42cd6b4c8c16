package entity

// Store write results, mirrored in the lowercase JSON shape the API's
// existing clients expect.

type InsertResult struct {
	InsertedID interface{} `json:"insertedId"`
	Message    string      `json:"message,omitempty"`
}

type UpdateResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
