package service

import (
	"Stride/internal/model"
	"Stride/internal/pkg/mongo"
	"context"
	"errors"
	"sort"
	"time"
)

// In-memory repository fakes. They mirror the SQL semantics the real
// implementations rely on: guarded counter updates, floor-at-zero
// decrements, and uniqueness arbitration on composite keys.

type fakeUserRepo struct {
	users  map[uint64]*model.User
	nextID uint64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint64]*model.User{}, nextID: 1}
}

func (f *fakeUserRepo) addUser(username, userType string) *model.User {
	u := &model.User{
		ID:         f.nextID,
		ExternalID: "ext-" + username,
		Username:   username,
		UserType:   userType,
		CreatedAt:  time.Now(),
	}
	f.users[u.ID] = u
	f.nextID++
	return u
}

func (f *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetUserByIds(_ context.Context, ids []uint64) ([]*model.User, error) {
	out := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetUserByExternalID(_ context.Context, externalID string) (*model.User, error) {
	for _, u := range f.users {
		if u.ExternalID == externalID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	if user.ID == 0 {
		user.ID = f.nextID
		f.nextID++
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, id uint64, fields map[string]interface{}) error {
	u, ok := f.users[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "username":
			u.Username = v.(string)
		case "email":
			email := v.(string)
			u.Email = &email
		case "onboarding_completed":
			u.OnboardingCompleted = v.(bool)
		}
	}
	return nil
}

func (f *fakeUserRepo) UpdateUserFollowCount(_ context.Context, id uint64, followerCount int64, followingCount int64) error {
	if u, ok := f.users[id]; ok {
		u.FollowerCount = followerCount
		u.FollowingCount = followingCount
	}
	return nil
}

type fakeProfileRepo struct {
	individuals map[uint64]*model.IndividualProfile
	gyms        map[uint64]*model.GymProfile
	brands      map[uint64]*model.BrandProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		individuals: map[uint64]*model.IndividualProfile{},
		gyms:        map[uint64]*model.GymProfile{},
		brands:      map[uint64]*model.BrandProfile{},
	}
}

func (f *fakeProfileRepo) GetIndividualProfile(_ context.Context, userID uint64) (*model.IndividualProfile, error) {
	return f.individuals[userID], nil
}

func (f *fakeProfileRepo) GetGymProfile(_ context.Context, userID uint64) (*model.GymProfile, error) {
	return f.gyms[userID], nil
}

func (f *fakeProfileRepo) GetBrandProfile(_ context.Context, userID uint64) (*model.BrandProfile, error) {
	return f.brands[userID], nil
}

func (f *fakeProfileRepo) CreateIndividualProfile(_ context.Context, profile *model.IndividualProfile) error {
	f.individuals[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) CreateGymProfile(_ context.Context, profile *model.GymProfile) error {
	f.gyms[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) CreateBrandProfile(_ context.Context, profile *model.BrandProfile) error {
	f.brands[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) UpdateIndividualProfile(_ context.Context, userID uint64, fields map[string]interface{}) error {
	p, ok := f.individuals[userID]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "bio":
			bio := v.(string)
			p.Bio = &bio
		case "offers_training":
			p.OffersTraining = v.(bool)
		case "height_cm":
			h := v.(float64)
			p.HeightCM = &h
		case "weight_kg":
			w := v.(float64)
			p.WeightKG = &w
		}
	}
	return nil
}

func (f *fakeProfileRepo) UpdateGymProfile(_ context.Context, userID uint64, fields map[string]interface{}) error {
	p, ok := f.gyms[userID]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "business_name":
			p.BusinessName = v.(string)
		case "member_count":
			p.MemberCount = v.(int)
		}
	}
	return nil
}

func (f *fakeProfileRepo) UpdateBrandProfile(_ context.Context, userID uint64, fields map[string]interface{}) error {
	p, ok := f.brands[userID]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "business_name":
			p.BusinessName = v.(string)
		case "description":
			d := v.(string)
			p.Description = &d
		}
	}
	return nil
}

func (f *fakeProfileRepo) ApplyScoreDelta(_ context.Context, userID uint64, delta int64, at time.Time) (bool, error) {
	p, ok := f.individuals[userID]
	if !ok {
		return false, nil
	}
	p.ActivityScore += delta
	if p.ActivityScore < 0 {
		p.ActivityScore = 0
	}
	p.LastActivityUpdate = at
	return true, nil
}

func (f *fakeProfileRepo) SetActivityScore(_ context.Context, userID uint64, score int64, at time.Time) error {
	if p, ok := f.individuals[userID]; ok {
		p.ActivityScore = score
		p.LastActivityUpdate = at
	}
	return nil
}

func (f *fakeProfileRepo) ranked() []*model.IndividualProfile {
	out := make([]*model.IndividualProfile, 0, len(f.individuals))
	for _, p := range f.individuals {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.ActivityScore != b.ActivityScore {
			return a.ActivityScore > b.ActivityScore
		}
		if !a.LastActivityUpdate.Equal(b.LastActivityUpdate) {
			return a.LastActivityUpdate.Before(b.LastActivityUpdate)
		}
		return a.UserID < b.UserID
	})
	return out
}

func (f *fakeProfileRepo) GetRankedIndividuals(_ context.Context, limit, offset int) ([]*model.IndividualProfile, error) {
	ranked := f.ranked()
	if offset >= len(ranked) {
		return []*model.IndividualProfile{}, nil
	}
	ranked = ranked[offset:]
	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (f *fakeProfileRepo) CountIndividuals(_ context.Context) (int64, error) {
	return int64(len(f.individuals)), nil
}

func (f *fakeProfileRepo) GetIndividualsAbove(_ context.Context, profile *model.IndividualProfile) (int64, error) {
	var count int64
	for _, ranked := range f.ranked() {
		if ranked.UserID == profile.UserID {
			break
		}
		count++
	}
	return count, nil
}

type followPair struct {
	follower, following uint64
}

type fakeUserFollowRepo struct {
	users *fakeUserRepo
	edges map[followPair]*model.UserFollow
}

func newFakeUserFollowRepo(users *fakeUserRepo) *fakeUserFollowRepo {
	return &fakeUserFollowRepo{users: users, edges: map[followPair]*model.UserFollow{}}
}

func (f *fakeUserFollowRepo) GetUserFollowers(_ context.Context, userID uint64, limit, offset int) ([]*model.UserFollow, error) {
	var out []*model.UserFollow
	for _, edge := range f.edges {
		if edge.FollowingID == userID {
			out = append(out, edge)
		}
	}
	return out, nil
}

func (f *fakeUserFollowRepo) GetUserFollowing(_ context.Context, userID uint64, limit, offset int) ([]*model.UserFollow, error) {
	var out []*model.UserFollow
	for _, edge := range f.edges {
		if edge.FollowerID == userID {
			out = append(out, edge)
		}
	}
	return out, nil
}

func (f *fakeUserFollowRepo) GetUserFollowerCount(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, edge := range f.edges {
		if edge.FollowingID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserFollowRepo) GetUserFollowingCount(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, edge := range f.edges {
		if edge.FollowerID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserFollowRepo) GetUserFollow(_ context.Context, followerID uint64, followingID uint64) (*model.UserFollow, error) {
	return f.edges[followPair{followerID, followingID}], nil
}

func (f *fakeUserFollowRepo) CreateFollowWithCounters(_ context.Context, userFollow *model.UserFollow) (bool, error) {
	key := followPair{userFollow.FollowerID, userFollow.FollowingID}
	if _, exists := f.edges[key]; exists {
		return false, nil
	}
	f.edges[key] = userFollow
	if u, ok := f.users.users[userFollow.FollowingID]; ok {
		u.FollowerCount++
	}
	if u, ok := f.users.users[userFollow.FollowerID]; ok {
		u.FollowingCount++
	}
	return true, nil
}

func (f *fakeUserFollowRepo) DeleteFollowWithCounters(_ context.Context, userFollow *model.UserFollow) (bool, error) {
	key := followPair{userFollow.FollowerID, userFollow.FollowingID}
	if _, exists := f.edges[key]; !exists {
		return false, nil
	}
	delete(f.edges, key)
	if u, ok := f.users.users[userFollow.FollowingID]; ok && u.FollowerCount > 0 {
		u.FollowerCount--
	}
	if u, ok := f.users.users[userFollow.FollowerID]; ok && u.FollowingCount > 0 {
		u.FollowingCount--
	}
	return true, nil
}

type fakeActivityRepo struct {
	ledger []*model.ActivityTransaction
	nextID uint64
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{nextID: 1}
}

func (f *fakeActivityRepo) CreateTransaction(_ context.Context, tx *model.ActivityTransaction) error {
	tx.ID = f.nextID
	f.nextID++
	f.ledger = append(f.ledger, tx)
	return nil
}

func (f *fakeActivityRepo) GetTransactionsByUser(_ context.Context, userID uint64, limit, offset int) ([]*model.ActivityTransaction, error) {
	var out []*model.ActivityTransaction
	for i := len(f.ledger) - 1; i >= 0; i-- {
		if f.ledger[i].UserID == userID {
			out = append(out, f.ledger[i])
		}
	}
	return out, nil
}

func (f *fakeActivityRepo) GetLedgerForReplay(_ context.Context, userID uint64) ([]*model.ActivityTransaction, error) {
	var out []*model.ActivityTransaction
	for _, tx := range f.ledger {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (f *fakeActivityRepo) SumPointsByUser(_ context.Context, userID uint64) (int64, error) {
	var sum int64
	for _, tx := range f.ledger {
		if tx.UserID == userID {
			sum += tx.Points
		}
	}
	return sum, nil
}

type fakeTrainingRepo struct {
	byID   map[uint64]*model.TrainingRequest
	byPair map[followPair]*model.TrainingRequest
	nextID uint64
}

func newFakeTrainingRepo() *fakeTrainingRepo {
	return &fakeTrainingRepo{
		byID:   map[uint64]*model.TrainingRequest{},
		byPair: map[followPair]*model.TrainingRequest{},
		nextID: 1,
	}
}

func (f *fakeTrainingRepo) GetByID(_ context.Context, id uint64) (*model.TrainingRequest, error) {
	return f.byID[id], nil
}

func (f *fakeTrainingRepo) GetByPair(_ context.Context, requesterID, trainerID uint64) (*model.TrainingRequest, error) {
	return f.byPair[followPair{requesterID, trainerID}], nil
}

func (f *fakeTrainingRepo) Create(_ context.Context, req *model.TrainingRequest) (bool, error) {
	key := followPair{req.RequesterID, req.TrainerID}
	if _, exists := f.byPair[key]; exists {
		return false, nil
	}
	req.ID = f.nextID
	f.nextID++
	f.byID[req.ID] = req
	f.byPair[key] = req
	return true, nil
}

func (f *fakeTrainingRepo) UpdateStatus(_ context.Context, id uint64, fromStatus, toStatus string) (bool, error) {
	req, ok := f.byID[id]
	if !ok || req.Status != fromStatus {
		return false, nil
	}
	req.Status = toStatus
	return true, nil
}

func (f *fakeTrainingRepo) GetByTrainer(_ context.Context, trainerID uint64, status string, limit, offset int) ([]*model.TrainingRequest, error) {
	var out []*model.TrainingRequest
	for _, req := range f.byID {
		if req.TrainerID == trainerID && (status == "" || req.Status == status) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeTrainingRepo) GetByRequester(_ context.Context, requesterID uint64, limit, offset int) ([]*model.TrainingRequest, error) {
	var out []*model.TrainingRequest
	for _, req := range f.byID {
		if req.RequesterID == requesterID {
			out = append(out, req)
		}
	}
	return out, nil
}

type fakePostRepo struct {
	posts  map[uint64]*model.Post
	nextID uint64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[uint64]*model.Post{}, nextID: 1}
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	post.ID = f.nextID
	f.nextID++
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetPostByID(_ context.Context, id uint64) (*model.Post, error) {
	post, ok := f.posts[id]
	if !ok || post.IsDeleted {
		return nil, nil
	}
	return post, nil
}

func (f *fakePostRepo) GetPostsByUser(_ context.Context, userID uint64, limit, offset int) ([]*model.Post, error) {
	var out []*model.Post
	for _, post := range f.posts {
		if post.UserID == userID && !post.IsDeleted {
			out = append(out, post)
		}
	}
	return out, nil
}

func (f *fakePostRepo) GetPublicFeed(_ context.Context, limit, offset int) ([]*model.Post, error) {
	var out []*model.Post
	for _, post := range f.posts {
		if post.Privacy == model.PostPrivacyPublic && !post.IsDeleted {
			out = append(out, post)
		}
	}
	return out, nil
}

func (f *fakePostRepo) GetFollowingFeed(_ context.Context, followerID uint64, limit, offset int) ([]*model.Post, error) {
	return nil, nil
}

func (f *fakePostRepo) UpdatePost(_ context.Context, id uint64, fields map[string]interface{}) error {
	post, ok := f.posts[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "content":
			post.Content = v.(string)
		case "privacy":
			post.Privacy = v.(string)
		}
	}
	return nil
}

func (f *fakePostRepo) SoftDeletePost(_ context.Context, id uint64) error {
	if post, ok := f.posts[id]; ok {
		post.IsDeleted = true
	}
	return nil
}

type fakePostActionRepo struct {
	posts    *fakePostRepo
	likes    map[followPair]*model.Like // (user, post)
	comments map[uint64]*model.PostComment
	nextID   uint64
}

func newFakePostActionRepo(posts *fakePostRepo) *fakePostActionRepo {
	return &fakePostActionRepo{
		posts:    posts,
		likes:    map[followPair]*model.Like{},
		comments: map[uint64]*model.PostComment{},
		nextID:   1,
	}
}

func (f *fakePostActionRepo) GetLike(_ context.Context, userID, postID uint64) (*model.Like, error) {
	return f.likes[followPair{userID, postID}], nil
}

func (f *fakePostActionRepo) AddLike(_ context.Context, like *model.Like) (bool, error) {
	key := followPair{like.UserID, like.PostID}
	if _, exists := f.likes[key]; exists {
		return false, nil
	}
	f.likes[key] = like
	if post, ok := f.posts.posts[like.PostID]; ok {
		post.LikesCount++
	}
	return true, nil
}

func (f *fakePostActionRepo) RemoveLike(_ context.Context, userID, postID uint64) (bool, error) {
	key := followPair{userID, postID}
	if _, exists := f.likes[key]; !exists {
		return false, nil
	}
	delete(f.likes, key)
	if post, ok := f.posts.posts[postID]; ok && post.LikesCount > 0 {
		post.LikesCount--
	}
	return true, nil
}

func (f *fakePostActionRepo) AddComment(_ context.Context, comment *model.PostComment) error {
	comment.ID = f.nextID
	f.nextID++
	f.comments[comment.ID] = comment
	if post, ok := f.posts.posts[comment.PostID]; ok {
		post.CommentsCount++
	}
	return nil
}

func (f *fakePostActionRepo) GetComment(_ context.Context, id uint64) (*model.PostComment, error) {
	comment, ok := f.comments[id]
	if !ok || comment.IsDeleted {
		return nil, nil
	}
	return comment, nil
}

func (f *fakePostActionRepo) RemoveComment(_ context.Context, id uint64, postID uint64) error {
	if comment, ok := f.comments[id]; ok && !comment.IsDeleted {
		comment.IsDeleted = true
		if post, ok := f.posts.posts[postID]; ok && post.CommentsCount > 0 {
			post.CommentsCount--
		}
	}
	return nil
}

func (f *fakePostActionRepo) GetCommentsByPost(_ context.Context, postID uint64, limit, offset int) ([]*model.PostComment, error) {
	var out []*model.PostComment
	for _, comment := range f.comments {
		if comment.PostID == postID && !comment.IsDeleted {
			out = append(out, comment)
		}
	}
	return out, nil
}

type fakeConversationRepo struct {
	convs   map[uint64]*model.Conversation
	byKey   map[string]*model.Conversation
	members map[followPair]*model.ConversationMember // (conversation, user)
	nextID  uint64
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{
		convs:   map[uint64]*model.Conversation{},
		byKey:   map[string]*model.Conversation{},
		members: map[followPair]*model.ConversationMember{},
		nextID:  1,
	}
}

func (f *fakeConversationRepo) GetByID(_ context.Context, id uint64) (*model.Conversation, error) {
	return f.convs[id], nil
}

func (f *fakeConversationRepo) GetByPeerKey(_ context.Context, peerKey string) (*model.Conversation, error) {
	return f.byKey[peerKey], nil
}

func (f *fakeConversationRepo) CreateConversation(_ context.Context, conv *model.Conversation, memberIDs []uint64) error {
	if winner, exists := f.byKey[conv.PeerKey]; exists {
		*conv = *winner
		return nil
	}
	conv.ID = f.nextID
	f.nextID++
	f.convs[conv.ID] = conv
	f.byKey[conv.PeerKey] = conv
	for _, uid := range memberIDs {
		f.members[followPair{conv.ID, uid}] = &model.ConversationMember{
			ConversationID: conv.ID,
			UserID:         uid,
			JoinedAt:       conv.CreatedAt,
		}
	}
	return nil
}

func (f *fakeConversationRepo) GetMember(_ context.Context, conversationID, userID uint64) (*model.ConversationMember, error) {
	return f.members[followPair{conversationID, userID}], nil
}

func (f *fakeConversationRepo) GetUserConversations(_ context.Context, userID uint64, limit, offset int) ([]*model.ConversationMember, error) {
	var out []*model.ConversationMember
	for _, m := range f.members {
		if m.UserID != userID {
			continue
		}
		conv := f.convs[m.ConversationID]
		m.Conversation = *conv
		if conv.MaxMsgSeq > m.ReadMsgSeq {
			m.UnreadCount = conv.MaxMsgSeq - m.ReadMsgSeq
		} else {
			m.UnreadCount = 0
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Conversation.LastMessageAt.After(out[j].Conversation.LastMessageAt)
	})
	return out, nil
}

func (f *fakeConversationRepo) AllocateSeq(_ context.Context, conversationID uint64, senderID uint64, preview string, at time.Time) (uint64, error) {
	conv, ok := f.convs[conversationID]
	if !ok {
		return 0, errors.New("conversation not found")
	}
	conv.MaxMsgSeq++
	conv.LastMsgContent = preview
	conv.LastSenderID = senderID
	conv.LastMessageAt = at
	return conv.MaxMsgSeq, nil
}

func (f *fakeConversationRepo) UpdateReadSeq(_ context.Context, conversationID, userID, seq uint64) error {
	if m, ok := f.members[followPair{conversationID, userID}]; ok && seq > m.ReadMsgSeq {
		m.ReadMsgSeq = seq
	}
	return nil
}

type fakeMessageRepo struct {
	msgs []*mongo.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (f *fakeMessageRepo) SaveMessage(_ context.Context, msg *mongo.Message) error {
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeMessageRepo) GetHistory(_ context.Context, convID uint64, lastSeq uint64, pageSize int) ([]*mongo.Message, error) {
	var out []*mongo.Message
	for _, m := range f.msgs {
		if m.ConversationID == convID && (lastSeq == 0 || m.Seq < lastSeq) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq > out[j].Seq })
	if pageSize < len(out) {
		out = out[:pageSize]
	}
	return out, nil
}

func (f *fakeMessageRepo) GetNewMessages(_ context.Context, convID uint64, afterSeq uint64, limit int) ([]*mongo.Message, error) {
	var out []*mongo.Message
	for _, m := range f.msgs {
		if m.ConversationID == convID && m.Seq > afterSeq {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}
