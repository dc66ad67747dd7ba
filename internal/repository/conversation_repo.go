package repository

import (
	"Stride/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConversationRepo interface {
	GetByID(ctx context.Context, id uint64) (*model.Conversation, error)
	GetByPeerKey(ctx context.Context, peerKey string) (*model.Conversation, error)
	CreateConversation(ctx context.Context, conv *model.Conversation, memberIDs []uint64) error
	GetMember(ctx context.Context, conversationID, userID uint64) (*model.ConversationMember, error)
	GetUserConversations(ctx context.Context, userID uint64, limit, offset int) ([]*model.ConversationMember, error)
	AllocateSeq(ctx context.Context, conversationID uint64, senderID uint64, preview string, at time.Time) (uint64, error)
	UpdateReadSeq(ctx context.Context, conversationID, userID, seq uint64) error
}

type ConversationRepoImpl struct {
	db *gorm.DB
}

func NewConversationRepo(db *gorm.DB) ConversationRepo {
	return &ConversationRepoImpl{db: db}
}

func (s *ConversationRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Conversation, error) {
	conv := &model.Conversation{}
	result := s.db.WithContext(ctx).First(conv, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return conv, nil
}

func (s *ConversationRepoImpl) GetByPeerKey(ctx context.Context, peerKey string) (*model.Conversation, error) {
	conv := &model.Conversation{}
	result := s.db.WithContext(ctx).
		Where("peer_key = ?", peerKey).
		First(conv)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return conv, nil
}

// CreateConversation inserts the head row and both member rows atomically.
// The peer_key unique index absorbs a concurrent create of the same pair;
// the loser re-reads the winner's row.
func (s *ConversationRepoImpl) CreateConversation(ctx context.Context, conv *model.Conversation, memberIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(conv)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			existing := &model.Conversation{}
			if err := tx.Where("peer_key = ?", conv.PeerKey).First(existing).Error; err != nil {
				return err
			}
			*conv = *existing
			return nil
		}
		now := time.Now()
		members := make([]*model.ConversationMember, 0, len(memberIDs))
		for _, uid := range memberIDs {
			members = append(members, &model.ConversationMember{
				ConversationID: conv.ID,
				UserID:         uid,
				JoinedAt:       now,
			})
		}
		return tx.Create(&members).Error
	})
}

func (s *ConversationRepoImpl) GetMember(ctx context.Context, conversationID, userID uint64) (*model.ConversationMember, error) {
	member := &model.ConversationMember{}
	result := s.db.WithContext(ctx).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		First(member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return member, nil
}

// GetUserConversations lists the member rows with the head preloaded and the
// unread count computed from max_msg_seq - read_msg_seq, most recent first.
func (s *ConversationRepoImpl) GetUserConversations(ctx context.Context, userID uint64, limit, offset int) ([]*model.ConversationMember, error) {
	var members []*model.ConversationMember
	result := s.db.WithContext(ctx).
		Model(&model.ConversationMember{}).
		Select("conversation_members.*, GREATEST(conversations.max_msg_seq - conversation_members.read_msg_seq, 0) AS unread_count").
		Joins("JOIN conversations ON conversations.id = conversation_members.conversation_id").
		Where("conversation_members.user_id = ?", userID).
		Order("conversations.last_message_at desc").
		Limit(limit).
		Offset(offset).
		Preload("Conversation").
		Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}
	return members, nil
}

// AllocateSeq claims the next message sequence under a row lock and stamps
// the preview fields in the same transaction.
func (s *ConversationRepoImpl) AllocateSeq(ctx context.Context, conversationID uint64, senderID uint64, preview string, at time.Time) (uint64, error) {
	var seq uint64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		conv := &model.Conversation{}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(conv, conversationID).Error; err != nil {
			return err
		}
		seq = conv.MaxMsgSeq + 1
		return tx.Model(&model.Conversation{}).
			Where("id = ?", conversationID).
			Updates(map[string]interface{}{
				"max_msg_seq":      seq,
				"last_msg_content": preview,
				"last_sender_id":   senderID,
				"last_message_at":  at,
			}).Error
	})
	if err != nil {
		return 0, err
	}
	return seq, nil
}

func (s *ConversationRepoImpl) UpdateReadSeq(ctx context.Context, conversationID, userID, seq uint64) error {
	return s.db.WithContext(ctx).
		Model(&model.ConversationMember{}).
		Where("conversation_id = ? AND user_id = ? AND read_msg_seq < ?", conversationID, userID, seq).
		Update("read_msg_seq", seq).Error
}
