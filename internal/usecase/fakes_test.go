package usecase

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ananyasrikanth2101/password-reset-backend/internal/model"
	"github.com/ananyasrikanth2101/password-reset-backend/internal/repository"
)

// -------- test fakes --------

// duplicateKeyErr is recognized by mongo.IsDuplicateKeyError, matching what
// the real driver returns on a unique index violation.
var duplicateKeyErr = mongo.WriteException{
	WriteErrors: []mongo.WriteError{{Code: 11000, Message: "duplicate key error"}},
}

type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[string]*model.User
	byEmail map[string]*model.User

	createErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*model.User),
		byEmail: make(map[string]*model.User),
	}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, exists := f.byEmail[user.Email]; exists {
		return nil, duplicateKeyErr
	}

	user.ID = bson.NewObjectID()
	copied := *user
	f.byID[user.ID.Hex()] = &copied
	f.byEmail[user.Email] = &copied
	return user, nil
}

func (f *fakeUserRepo) GetUser(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.byEmail[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) UpdateUser(
	_ context.Context,
	id string,
	params repository.UpdateUserParams,
) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return nil, f.updateErr
	}

	user, ok := f.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if params.Email != nil {
		delete(f.byEmail, user.Email)
		user.Email = *params.Email
		f.byEmail[user.Email] = user
	}
	if params.PasswordHash != nil {
		user.PasswordHash = *params.PasswordHash
	}

	copied := *user
	return &copied, nil
}

type fakeTokenRepo struct {
	mu      sync.Mutex
	byValue map[string]*model.PasswordResetToken

	createErr error
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{
		byValue: make(map[string]*model.PasswordResetToken),
	}
}

func (f *fakeTokenRepo) CreateToken(
	_ context.Context,
	token *model.PasswordResetToken,
) (*model.PasswordResetToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}

	token.ID = bson.NewObjectID()
	copied := *token
	f.byValue[token.Value] = &copied
	return token, nil
}

func (f *fakeTokenRepo) GetTokenByValue(
	_ context.Context,
	value string,
) (*model.PasswordResetToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	token, ok := f.byValue[value]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *token
	return &copied, nil
}

func (f *fakeTokenRepo) ClaimToken(
	_ context.Context,
	value string,
) (*model.PasswordResetToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	token, ok := f.byValue[value]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(f.byValue, value)
	return token, nil
}

func (f *fakeTokenRepo) DeleteExpiredTokens(_ context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeTokenRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byValue)
}

// single returns the only stored token; the zero value if there is not
// exactly one.
func (f *fakeTokenRepo) single() *model.PasswordResetToken {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.byValue) != 1 {
		return nil
	}
	for _, token := range f.byValue {
		return token
	}
	return nil
}

type sentMail struct {
	to      []string
	subject string
	body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendHTML(to []string, subject, htmlBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}
