package account

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/counsel-scheduler/internal/auth"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

func TestRegisterAndLogin(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewAccountRepository(store)
	tokens := auth.NewTokens("test-secret")
	ctx := context.Background()

	register := NewRegister(repo, tokens, "Boss@Example.com", nil)
	login := NewLogin(repo, tokens)

	res, err := register.Execute(ctx, RegisterInput{
		Email:    " Ana@Example.com ",
		Password: "secret123",
		FullName: "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", res.User.Email)
	assert.Equal(t, models.RoleMember, res.User.Role)
	assert.NotEmpty(t, res.Token)
	assert.NotEqual(t, "secret123", res.User.PasswordHash)

	claims, err := tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)

	_, err = register.Execute(ctx, RegisterInput{Email: "ana@example.com", Password: "x"})
	assert.True(t, httperr.IsBusiness(err, "duplicate_email"))

	admin, err := register.Execute(ctx, RegisterInput{Email: "boss@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.User.Role)

	in, err := login.Execute(ctx, "ANA@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, in.User.ID)
	require.NotNil(t, in.User.Profile)
	assert.Equal(t, "Ana", in.User.Profile.FullName)

	_, err = login.Execute(ctx, "ana@example.com", "wrong")
	assert.True(t, httperr.IsKind(err, httperr.KindUnauthenticated))

	_, err = login.Execute(ctx, "nobody@example.com", "secret123")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))
}

func TestRegisterChecksEmailDomain(t *testing.T) {
	repo := memory.NewAccountRepository(memory.NewStore())
	register := NewRegister(repo, auth.NewTokens("s"), "", func(email string) bool {
		return !strings.HasSuffix(email, "@invalid.test")
	})

	_, err := register.Execute(context.Background(), RegisterInput{Email: "a@invalid.test", Password: "secret123"})
	assert.True(t, httperr.IsBusiness(err, "invalid_email_domain"))
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewAccountRepository(store)
	tokens := auth.NewTokens("s")
	ctx := context.Background()

	res, err := NewRegister(repo, tokens, "", nil).Execute(ctx, RegisterInput{Email: "c@example.com", Password: "secret123"})
	require.NoError(t, err)

	cons := memory.NewConsultantRepository(store)
	require.NoError(t, cons.SetUserStatus(ctx, res.User.ID, models.UserStatusInactive))

	_, err = NewLogin(repo, tokens).Execute(ctx, "c@example.com", "secret123")
	assert.True(t, httperr.IsBusiness(err, "user_inactive"))
}

type recordingUploader struct {
	key         string
	contentType string
	body        []byte
	err         error
}

func (u *recordingUploader) Put(_ context.Context, key, contentType string, body []byte) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.key, u.contentType, u.body = key, contentType, body
	return "https://cdn.example.com/" + key, nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadAvatar(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewAccountRepository(store)
	u := store.AddUser(models.User{Email: "a@example.com"})
	up := &recordingUploader{}
	ctx := context.Background()

	got, err := NewUploadAvatar(repo, up).Execute(ctx, u.ID, bytes.NewReader(pngBytes(t, 64, 32)))
	require.NoError(t, err)

	assert.Equal(t, "image/webp", up.contentType)
	assert.True(t, strings.HasPrefix(up.key, "avatars/1/"))
	assert.True(t, bytes.HasPrefix(up.body, []byte("RIFF")))
	require.NotNil(t, got.Profile)
	assert.Equal(t, "https://cdn.example.com/"+up.key, got.Profile.AvatarURL)

	_, err = NewUploadAvatar(repo, up).Execute(ctx, u.ID, strings.NewReader("not an image"))
	assert.True(t, httperr.IsBusiness(err, "invalid_image"))

	_, err = NewUploadAvatar(repo, nil).Execute(ctx, u.ID, bytes.NewReader(pngBytes(t, 8, 8)))
	assert.True(t, httperr.IsBusiness(err, "storage_disabled"))

	up.err = errors.New("bucket gone")
	_, err = NewUploadAvatar(repo, up).Execute(ctx, u.ID, bytes.NewReader(pngBytes(t, 8, 8)))
	assert.True(t, httperr.IsKind(err, httperr.KindOperationFailed))
}
