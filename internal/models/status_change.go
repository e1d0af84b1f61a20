package models

import "time"

// StatusChange is one append-only audit entry for an application status
// mutation. Stored in Mongo (status_changes collection). A nil Actor means
// the change was automated by the screening orchestrator.
type StatusChange struct {
	ApplicationID uint      `bson:"application_id" json:"application_id"`
	OldStatus     string    `bson:"old_status" json:"old_status"`
	NewStatus     string    `bson:"new_status" json:"new_status"`
	Actor         *string   `bson:"actor" json:"actor"`
	Note          string    `bson:"note" json:"note"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
