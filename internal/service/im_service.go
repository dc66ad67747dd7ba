package service

import (
	"Stride/internal/api/dto"
	"Stride/internal/model"
	"Stride/internal/pkg/mongo"
	"Stride/internal/repository"
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const maxPreviewLen = 120

type IMService interface {
	SendMessage(ctx context.Context, senderID uint64, send *dto.SendMessageDTO) (*dto.MessageDTO, error)
	GetConversations(ctx context.Context, userID uint64, limit, offset int) ([]*dto.ConversationDTO, error)
	GetHistory(ctx context.Context, userID, conversationID uint64, lastSeq uint64, pageSize int) ([]*dto.MessageDTO, error)
	GetNewMessages(ctx context.Context, userID, conversationID uint64, afterSeq uint64, limit int) ([]*dto.MessageDTO, error)
	MarkRead(ctx context.Context, userID, conversationID uint64, seq uint64) error
}

type IMServiceImpl struct {
	userRepo         repository.UserRepo
	conversationRepo repository.ConversationRepo
	messageRepo      mongo.MessageRepo
}

func NewIMService(userRepo repository.UserRepo, conversationRepo repository.ConversationRepo, messageRepo mongo.MessageRepo) IMService {
	return &IMServiceImpl{
		userRepo:         userRepo,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
	}
}

// truncatePreview caps the stored preview at maxPreviewLen bytes, backing
// off to the previous rune boundary so the cut never leaves an invalid
// UTF-8 tail behind.
func truncatePreview(s string) string {
	if len(s) <= maxPreviewLen {
		return s
	}
	cut := maxPreviewLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// peerKey identifies the unordered user pair; low id first so both sides
// derive the same key.
func peerKey(a, b uint64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d_%d", a, b)
}

// SendMessage resolves (or lazily creates) the pair conversation, claims
// the next seq in MySQL, then writes the body to MongoDB. A body write that
// fails after the seq was claimed leaves a gap, which readers tolerate.
func (s *IMServiceImpl) SendMessage(ctx context.Context, senderID uint64, send *dto.SendMessageDTO) (*dto.MessageDTO, error) {
	if senderID == send.PeerID {
		return nil, ErrMessageSelf
	}

	peer, err := s.userRepo.GetUserById(ctx, send.PeerID)
	if err != nil {
		return nil, err
	}
	if peer == nil {
		return nil, ErrUserNotFound
	}

	key := peerKey(senderID, send.PeerID)
	conv, err := s.conversationRepo.GetByPeerKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		conv = &model.Conversation{PeerKey: key, CreatedAt: time.Now()}
		if err = s.conversationRepo.CreateConversation(ctx, conv, []uint64{senderID, send.PeerID}); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	seq, err := s.conversationRepo.AllocateSeq(ctx, conv.ID, senderID, truncatePreview(send.Content), now)
	if err != nil {
		return nil, err
	}

	msg := &mongo.Message{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		SenderID:       senderID,
		Content:        send.Content,
		Seq:            seq,
		CreatedAt:      now,
	}
	if err = s.messageRepo.SaveMessage(ctx, msg); err != nil {
		return nil, err
	}

	// sender has read their own message
	if err = s.conversationRepo.UpdateReadSeq(ctx, conv.ID, senderID, seq); err != nil {
		return nil, err
	}

	return toMessageDTO(msg), nil
}

func (s *IMServiceImpl) GetConversations(ctx context.Context, userID uint64, limit, offset int) ([]*dto.ConversationDTO, error) {
	members, err := s.conversationRepo.GetUserConversations(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return []*dto.ConversationDTO{}, nil
	}

	peerIDs := make([]uint64, 0, len(members))
	for _, m := range members {
		peerIDs = append(peerIDs, otherOfPair(m.Conversation.PeerKey, userID))
	}
	users, err := s.userRepo.GetUserByIds(ctx, peerIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[uint64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}

	out := make([]*dto.ConversationDTO, 0, len(members))
	for _, m := range members {
		peerID := otherOfPair(m.Conversation.PeerKey, userID)
		out = append(out, &dto.ConversationDTO{
			ConversationID: m.ConversationID,
			PeerID:         peerID,
			PeerUsername:   names[peerID],
			LastMsgContent: m.Conversation.LastMsgContent,
			LastSenderID:   m.Conversation.LastSenderID,
			LastMessageAt:  m.Conversation.LastMessageAt,
			UnreadCount:    m.UnreadCount,
		})
	}
	return out, nil
}

// otherOfPair extracts the peer's id from a "low_high" key.
func otherOfPair(key string, userID uint64) uint64 {
	parts := strings.SplitN(key, "_", 2)
	if len(parts) != 2 {
		return 0
	}
	var a, b uint64
	_, _ = fmt.Sscanf(key, "%d_%d", &a, &b)
	if a == userID {
		return b
	}
	return a
}

func (s *IMServiceImpl) requireMember(ctx context.Context, userID, conversationID uint64) error {
	member, err := s.conversationRepo.GetMember(ctx, conversationID, userID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrConversationNotFound
	}
	return nil
}

func (s *IMServiceImpl) GetHistory(ctx context.Context, userID, conversationID uint64, lastSeq uint64, pageSize int) ([]*dto.MessageDTO, error) {
	if err := s.requireMember(ctx, userID, conversationID); err != nil {
		return nil, err
	}
	msgs, err := s.messageRepo.GetHistory(ctx, conversationID, lastSeq, pageSize)
	if err != nil {
		return nil, err
	}
	return toMessageDTOs(msgs), nil
}

func (s *IMServiceImpl) GetNewMessages(ctx context.Context, userID, conversationID uint64, afterSeq uint64, limit int) ([]*dto.MessageDTO, error) {
	if err := s.requireMember(ctx, userID, conversationID); err != nil {
		return nil, err
	}
	msgs, err := s.messageRepo.GetNewMessages(ctx, conversationID, afterSeq, limit)
	if err != nil {
		return nil, err
	}
	return toMessageDTOs(msgs), nil
}

// MarkRead advances the caller's read pointer; it never moves backwards.
func (s *IMServiceImpl) MarkRead(ctx context.Context, userID, conversationID uint64, seq uint64) error {
	if err := s.requireMember(ctx, userID, conversationID); err != nil {
		return err
	}
	return s.conversationRepo.UpdateReadSeq(ctx, conversationID, userID, seq)
}

func toMessageDTO(msg *mongo.Message) *dto.MessageDTO {
	return &dto.MessageDTO{
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		Seq:            msg.Seq,
		Content:        msg.Content,
		CreatedAt:      msg.CreatedAt,
	}
}

func toMessageDTOs(msgs []*mongo.Message) []*dto.MessageDTO {
	out := make([]*dto.MessageDTO, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, toMessageDTO(msg))
	}
	return out
}
