package service

import (
	"context"

	"skillconnect/internal/models"
)

type userRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.User, error)
	getByIDWithPostsFn func(context.Context, uint, int) (*models.User, error)
	getByEmailFn       func(context.Context, string) (*models.User, error)
	getByUsernameFn    func(context.Context, string) (*models.User, error)
	createFn           func(context.Context, *models.User) error
	updateFn           func(context.Context, *models.User) error
	deleteFn           func(context.Context, uint) error
	listFn             func(context.Context, int, int) ([]models.User, error)
	searchFn           func(context.Context, string, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithPosts(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.getByIDWithPostsFn(ctx, id, limit)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Search(ctx context.Context, q string, limit, offset int) ([]models.User, error) {
	return s.searchFn(ctx, q, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:          func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByIDWithPostsFn: func(context.Context, uint, int) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:       func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn:    func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		createFn:           func(context.Context, *models.User) error { return nil },
		updateFn:           func(context.Context, *models.User) error { return nil },
		deleteFn:           func(context.Context, uint) error { return nil },
		listFn:             func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		searchFn:           func(context.Context, string, int, int) ([]models.User, error) { return nil, nil },
	}
}

type followRepoStub struct {
	createFn         func(context.Context, *models.Follow) (bool, error)
	deleteFn         func(context.Context, uint, uint) (bool, error)
	existsFn         func(context.Context, uint, uint) (bool, error)
	countFollowersFn func(context.Context, uint) (int64, error)
	countFollowingFn func(context.Context, uint) (int64, error)
	listFollowersFn  func(context.Context, uint, int, int) ([]models.User, error)
	listFollowingFn  func(context.Context, uint, int, int) ([]models.User, error)
}

func (s *followRepoStub) Create(ctx context.Context, follow *models.Follow) (bool, error) {
	return s.createFn(ctx, follow)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.deleteFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followingID)
}
func (s *followRepoStub) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowersFn(ctx, userID)
}
func (s *followRepoStub) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowingFn(ctx, userID)
}
func (s *followRepoStub) ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	return s.listFollowersFn(ctx, userID, limit, offset)
}
func (s *followRepoStub) ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	return s.listFollowingFn(ctx, userID, limit, offset)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:         func(context.Context, *models.Follow) (bool, error) { return true, nil },
		deleteFn:         func(context.Context, uint, uint) (bool, error) { return true, nil },
		existsFn:         func(context.Context, uint, uint) (bool, error) { return false, nil },
		countFollowersFn: func(context.Context, uint) (int64, error) { return 0, nil },
		countFollowingFn: func(context.Context, uint) (int64, error) { return 0, nil },
		listFollowersFn:  func(context.Context, uint, int, int) ([]models.User, error) { return nil, nil },
		listFollowingFn:  func(context.Context, uint, int, int) ([]models.User, error) { return nil, nil },
	}
}

type likeRepoStub struct {
	createFn           func(context.Context, *models.Like) (bool, error)
	getByIDFn          func(context.Context, uint) (*models.Like, error)
	getByUserAndPostFn func(context.Context, uint, uint) (*models.Like, error)
	deleteFn           func(context.Context, uint, uint) (bool, error)
	existsFn           func(context.Context, uint, uint) (bool, error)
	countByPostFn      func(context.Context, uint) (int64, error)
	listByPostFn       func(context.Context, uint, int, int) ([]models.Like, error)
	listByUserFn       func(context.Context, uint, int, int) ([]models.Like, error)
}

func (s *likeRepoStub) Create(ctx context.Context, like *models.Like) (bool, error) {
	return s.createFn(ctx, like)
}
func (s *likeRepoStub) GetByID(ctx context.Context, id uint) (*models.Like, error) {
	return s.getByIDFn(ctx, id)
}
func (s *likeRepoStub) GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Like, error) {
	return s.getByUserAndPostFn(ctx, userID, postID)
}
func (s *likeRepoStub) Delete(ctx context.Context, userID, postID uint) (bool, error) {
	return s.deleteFn(ctx, userID, postID)
}
func (s *likeRepoStub) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	return s.existsFn(ctx, userID, postID)
}
func (s *likeRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostFn(ctx, postID)
}
func (s *likeRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]models.Like, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *likeRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Like, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		createFn:  func(context.Context, *models.Like) (bool, error) { return true, nil },
		getByIDFn: func(context.Context, uint) (*models.Like, error) { return &models.Like{}, nil },
		getByUserAndPostFn: func(ctx context.Context, userID, postID uint) (*models.Like, error) {
			return nil, nil
		},
		deleteFn:      func(context.Context, uint, uint) (bool, error) { return true, nil },
		existsFn:      func(context.Context, uint, uint) (bool, error) { return false, nil },
		countByPostFn: func(context.Context, uint) (int64, error) { return 0, nil },
		listByPostFn:  func(context.Context, uint, int, int) ([]models.Like, error) { return nil, nil },
		listByUserFn:  func(context.Context, uint, int, int) ([]models.Like, error) { return nil, nil },
	}
}

type postRepoStub struct {
	createFn      func(context.Context, *models.Post) error
	getByIDFn     func(context.Context, uint, uint) (*models.Post, error)
	getByUserIDFn func(context.Context, uint, int, int, uint) ([]*models.Post, error)
	listFn        func(context.Context, int, int, uint, string) ([]*models.Post, error)
	searchFn      func(context.Context, string, int, int, uint) ([]*models.Post, error)
	updateFn      func(context.Context, *models.Post) error
	deleteFn      func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, currentUserID)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int, currentUserID uint, sort string) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset, currentUserID, sort)
}
func (s *postRepoStub) Search(ctx context.Context, query string, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.searchFn(ctx, query, limit, offset, currentUserID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(context.Context, *models.Post) error { return nil },
		getByIDFn: func(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
		getByUserIDFn: func(context.Context, uint, int, int, uint) ([]*models.Post, error) { return nil, nil },
		listFn:        func(context.Context, int, int, uint, string) ([]*models.Post, error) { return nil, nil },
		searchFn:      func(context.Context, string, int, int, uint) ([]*models.Post, error) { return nil, nil },
		updateFn:      func(context.Context, *models.Post) error { return nil },
		deleteFn:      func(context.Context, uint) error { return nil },
	}
}

type notificationRepoStub struct {
	createFn           func(context.Context, *models.Notification) error
	getByIDFn          func(context.Context, uint) (*models.Notification, error)
	listByRecipientFn  func(context.Context, uint, int, int) ([]models.Notification, error)
	countByRecipientFn func(context.Context, uint) (int64, error)
	deleteFn           func(context.Context, uint) (bool, error)
}

func (s *notificationRepoStub) Create(ctx context.Context, n *models.Notification) error {
	return s.createFn(ctx, n)
}
func (s *notificationRepoStub) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	return s.getByIDFn(ctx, id)
}
func (s *notificationRepoStub) ListByRecipient(ctx context.Context, userID uint, limit, offset int) ([]models.Notification, error) {
	return s.listByRecipientFn(ctx, userID, limit, offset)
}
func (s *notificationRepoStub) CountByRecipient(ctx context.Context, userID uint) (int64, error) {
	return s.countByRecipientFn(ctx, userID)
}
func (s *notificationRepoStub) Delete(ctx context.Context, id uint) (bool, error) {
	return s.deleteFn(ctx, id)
}

func noopNotificationRepo() *notificationRepoStub {
	return &notificationRepoStub{
		createFn:           func(context.Context, *models.Notification) error { return nil },
		getByIDFn:          func(context.Context, uint) (*models.Notification, error) { return &models.Notification{}, nil },
		listByRecipientFn:  func(context.Context, uint, int, int) ([]models.Notification, error) { return nil, nil },
		countByRecipientFn: func(context.Context, uint) (int64, error) { return 0, nil },
		deleteFn:           func(context.Context, uint) (bool, error) { return true, nil },
	}
}

// notifierStub records notifications created through the notificationCreator
// seam so engagement tests can assert on fanout without a real service.
type notifierStub struct {
	created []models.Notification
	err     error
}

func (s *notifierStub) Create(ctx context.Context, recipientID uint, title, message string) (*models.Notification, error) {
	if s.err != nil {
		return nil, s.err
	}
	n := models.Notification{UserID: recipientID, Title: title, Message: message}
	s.created = append(s.created, n)
	return &n, nil
}
