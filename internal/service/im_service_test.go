package service

import (
	"Stride/internal/api/dto"
	"Stride/internal/model"
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

type imFixture struct {
	users    *fakeUserRepo
	convs    *fakeConversationRepo
	messages *fakeMessageRepo
	svc      IMService
}

func newIMFixture() *imFixture {
	users := newFakeUserRepo()
	convs := newFakeConversationRepo()
	messages := newFakeMessageRepo()
	return &imFixture{
		users:    users,
		convs:    convs,
		messages: messages,
		svc:      NewIMService(users, convs, messages),
	}
}

func TestPeerKey(t *testing.T) {
	// both sides of a pair must land on the same conversation
	require.Equal(t, "3_7", peerKey(3, 7))
	require.Equal(t, "3_7", peerKey(7, 3))
}

func TestOtherOfPair(t *testing.T) {
	require.Equal(t, uint64(7), otherOfPair("3_7", 3))
	require.Equal(t, uint64(3), otherOfPair("3_7", 7))
	require.Equal(t, uint64(0), otherOfPair("bogus", 3))
}

func TestTruncatePreview(t *testing.T) {
	t.Run("short content passes through", func(t *testing.T) {
		require.Equal(t, "hello", truncatePreview("hello"))
	})

	t.Run("ascii cuts at the cap", func(t *testing.T) {
		long := strings.Repeat("x", maxPreviewLen+30)
		require.Equal(t, strings.Repeat("x", maxPreviewLen), truncatePreview(long))
	})

	t.Run("never splits a rune at the boundary", func(t *testing.T) {
		// 1 + 40*3 = 121 bytes; a blind byte cut at 120 would keep two
		// bytes of the final rune
		mixed := "a" + strings.Repeat("你", 40)
		preview := truncatePreview(mixed)
		require.True(t, utf8.ValidString(preview))
		require.LessOrEqual(t, len(preview), maxPreviewLen)
		require.Equal(t, "a"+strings.Repeat("你", 39), preview)
	})
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("self message rejected", func(t *testing.T) {
		f := newIMFixture()
		alice := f.users.addUser("alice", model.UserTypeIndividual)
		_, err := f.svc.SendMessage(ctx, alice.ID, &dto.SendMessageDTO{PeerID: alice.ID, Content: "hi"})
		require.ErrorIs(t, err, ErrMessageSelf)
	})

	t.Run("unknown peer rejected", func(t *testing.T) {
		f := newIMFixture()
		alice := f.users.addUser("alice", model.UserTypeIndividual)
		_, err := f.svc.SendMessage(ctx, alice.ID, &dto.SendMessageDTO{PeerID: 999, Content: "hi"})
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("seq grows and both directions share one conversation", func(t *testing.T) {
		f := newIMFixture()
		alice := f.users.addUser("alice", model.UserTypeIndividual)
		bob := f.users.addUser("bob", model.UserTypeIndividual)

		first, err := f.svc.SendMessage(ctx, alice.ID, &dto.SendMessageDTO{PeerID: bob.ID, Content: "hi"})
		require.NoError(t, err)
		require.Equal(t, uint64(1), first.Seq)

		reply, err := f.svc.SendMessage(ctx, bob.ID, &dto.SendMessageDTO{PeerID: alice.ID, Content: "hey"})
		require.NoError(t, err)
		require.Equal(t, uint64(2), reply.Seq)
		require.Equal(t, first.ConversationID, reply.ConversationID)
		require.Len(t, f.convs.convs, 1)
	})

	t.Run("sender's read pointer follows their own message", func(t *testing.T) {
		f := newIMFixture()
		alice := f.users.addUser("alice", model.UserTypeIndividual)
		bob := f.users.addUser("bob", model.UserTypeIndividual)

		msg, err := f.svc.SendMessage(ctx, alice.ID, &dto.SendMessageDTO{PeerID: bob.ID, Content: "hi"})
		require.NoError(t, err)

		sender, err := f.convs.GetMember(ctx, msg.ConversationID, alice.ID)
		require.NoError(t, err)
		require.Equal(t, msg.Seq, sender.ReadMsgSeq)

		receiver, err := f.convs.GetMember(ctx, msg.ConversationID, bob.ID)
		require.NoError(t, err)
		require.Equal(t, uint64(0), receiver.ReadMsgSeq)
	})

	t.Run("stored preview stays valid UTF-8 for long multi-byte content", func(t *testing.T) {
		f := newIMFixture()
		alice := f.users.addUser("alice", model.UserTypeIndividual)
		bob := f.users.addUser("bob", model.UserTypeIndividual)

		content := "a" + strings.Repeat("你", 40)
		msg, err := f.svc.SendMessage(ctx, alice.ID, &dto.SendMessageDTO{PeerID: bob.ID, Content: content})
		require.NoError(t, err)
		// the full body is untouched, only the head-row preview is cut
		require.Equal(t, content, msg.Content)

		conv := f.convs.convs[msg.ConversationID]
		require.True(t, utf8.ValidString(conv.LastMsgContent))
		require.LessOrEqual(t, len(conv.LastMsgContent), maxPreviewLen)
		require.Equal(t, "a"+strings.Repeat("你", 39), conv.LastMsgContent)
	})
}

func TestGetConversations(t *testing.T) {
	ctx := context.Background()
	f := newIMFixture()
	alice := f.users.addUser("alice", model.UserTypeIndividual)
	bob := f.users.addUser("bob", model.UserTypeIndividual)
	carol := f.users.addUser("carol", model.UserTypeIndividual)

	m1, err := f.svc.SendMessage(ctx, alice.ID, &dto.SendMessageDTO{PeerID: bob.ID, Content: "hi bob"})
	require.NoError(t, err)
	_, err = f.svc.SendMessage(ctx, alice.ID, &dto.SendMessageDTO{PeerID: bob.ID, Content: "you there?"})
	require.NoError(t, err)
	m3, err := f.svc.SendMessage(ctx, carol.ID, &dto.SendMessageDTO{PeerID: bob.ID, Content: "training tomorrow"})
	require.NoError(t, err)

	// pin the head timestamps so list order does not hinge on clock ticks
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	f.convs.convs[m1.ConversationID].LastMessageAt = base
	f.convs.convs[m3.ConversationID].LastMessageAt = base.Add(time.Hour)

	list, err := f.svc.GetConversations(ctx, bob.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.Equal(t, carol.ID, list[0].PeerID)
	require.Equal(t, "carol", list[0].PeerUsername)
	require.Equal(t, "training tomorrow", list[0].LastMsgContent)
	require.Equal(t, uint64(1), list[0].UnreadCount)

	require.Equal(t, alice.ID, list[1].PeerID)
	require.Equal(t, uint64(2), list[1].UnreadCount)

	// senders have read their own messages
	mine, err := f.svc.GetConversations(ctx, alice.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, uint64(0), mine[0].UnreadCount)
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	f := newIMFixture()
	alice := f.users.addUser("alice", model.UserTypeIndividual)
	bob := f.users.addUser("bob", model.UserTypeIndividual)
	stranger := f.users.addUser("carol", model.UserTypeIndividual)

	var convID uint64
	for seq := 0; seq < 3; seq++ {
		msg, err := f.svc.SendMessage(ctx, alice.ID, &dto.SendMessageDTO{PeerID: bob.ID, Content: "ping"})
		require.NoError(t, err)
		convID = msg.ConversationID
	}

	t.Run("non-member is told not found", func(t *testing.T) {
		require.ErrorIs(t, f.svc.MarkRead(ctx, stranger.ID, convID, 1), ErrConversationNotFound)
	})

	t.Run("advances the pointer", func(t *testing.T) {
		require.NoError(t, f.svc.MarkRead(ctx, bob.ID, convID, 2))
		member, err := f.convs.GetMember(ctx, convID, bob.ID)
		require.NoError(t, err)
		require.Equal(t, uint64(2), member.ReadMsgSeq)

		list, err := f.svc.GetConversations(ctx, bob.ID, 20, 0)
		require.NoError(t, err)
		require.Equal(t, uint64(1), list[0].UnreadCount)
	})

	t.Run("never moves backwards", func(t *testing.T) {
		require.NoError(t, f.svc.MarkRead(ctx, bob.ID, convID, 1))
		member, err := f.convs.GetMember(ctx, convID, bob.ID)
		require.NoError(t, err)
		require.Equal(t, uint64(2), member.ReadMsgSeq)
	})
}

func TestGetHistoryAndNewMessages(t *testing.T) {
	ctx := context.Background()
	f := newIMFixture()
	alice := f.users.addUser("alice", model.UserTypeIndividual)
	bob := f.users.addUser("bob", model.UserTypeIndividual)
	stranger := f.users.addUser("carol", model.UserTypeIndividual)

	var convID uint64
	for _, content := range []string{"one", "two", "three"} {
		msg, err := f.svc.SendMessage(ctx, alice.ID, &dto.SendMessageDTO{PeerID: bob.ID, Content: content})
		require.NoError(t, err)
		convID = msg.ConversationID
	}

	t.Run("membership gates reads", func(t *testing.T) {
		_, err := f.svc.GetHistory(ctx, stranger.ID, convID, 0, 10)
		require.ErrorIs(t, err, ErrConversationNotFound)
		_, err = f.svc.GetNewMessages(ctx, stranger.ID, convID, 0, 10)
		require.ErrorIs(t, err, ErrConversationNotFound)
	})

	t.Run("history pages backwards by seq", func(t *testing.T) {
		page, err := f.svc.GetHistory(ctx, bob.ID, convID, 0, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		require.Equal(t, uint64(3), page[0].Seq)
		require.Equal(t, uint64(2), page[1].Seq)

		older, err := f.svc.GetHistory(ctx, bob.ID, convID, page[1].Seq, 2)
		require.NoError(t, err)
		require.Len(t, older, 1)
		require.Equal(t, "one", older[0].Content)
	})

	t.Run("new messages page forwards from a cursor", func(t *testing.T) {
		fresh, err := f.svc.GetNewMessages(ctx, bob.ID, convID, 1, 10)
		require.NoError(t, err)
		require.Len(t, fresh, 2)
		require.Equal(t, uint64(2), fresh[0].Seq)
		require.Equal(t, uint64(3), fresh[1].Seq)
	})
}
