package dto

import "time"

// SendMessageDTO sends a direct message to another account.
type SendMessageDTO struct {
	PeerID  uint64 `json:"peer_id" binding:"required"`
	Content string `json:"content" binding:"required" validate:"min=1,max=2000"`
}

// MessageDTO is one message in a conversation.
type MessageDTO struct {
	ConversationID uint64    `json:"conversation_id"`
	SenderID       uint64    `json:"sender_id"`
	Seq            uint64    `json:"seq"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// ConversationDTO is one entry in the inbox list.
type ConversationDTO struct {
	ConversationID uint64    `json:"conversation_id"`
	PeerID         uint64    `json:"peer_id"`
	PeerUsername   string    `json:"peer_username"`
	LastMsgContent string    `json:"last_msg_content"`
	LastSenderID   uint64    `json:"last_sender_id"`
	LastMessageAt  time.Time `json:"last_message_at"`
	UnreadCount    uint64    `json:"unread_count"`
}

// MarkReadDTO advances the read pointer of the caller.
type MarkReadDTO struct {
	Seq uint64 `json:"seq" binding:"required"`
}
