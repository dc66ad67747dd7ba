package mongo

import (
	"time"
)

// Message is the per-message detail document. The conversation head and the
// seq allocator live in MySQL; seq is unique within a conversation.
type Message struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	ConversationID uint64    `bson:"conversation_id" json:"conversationId"`
	SenderID       uint64    `bson:"sender_id" json:"senderId"`
	Content        string    `bson:"content" json:"content"`
	Seq            uint64    `bson:"seq" json:"seq"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}
