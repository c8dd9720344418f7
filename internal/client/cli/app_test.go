package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/clubauth/internal/client/flow"
	"github.com/dmitrijs2005/clubauth/internal/client/gateway"
	"github.com/dmitrijs2005/clubauth/internal/client/localdb"
	"github.com/dmitrijs2005/clubauth/internal/client/models"
	"github.com/dmitrijs2005/clubauth/internal/client/navigation"
	"github.com/dmitrijs2005/clubauth/internal/client/translate"
	"github.com/dmitrijs2005/clubauth/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type stubGateway struct {
	identity models.Identity
	code     string
	resets   []string
}

func (g *stubGateway) fail() error {
	if g.code == "" {
		return nil
	}
	return &gateway.ProviderError{Code: g.code}
}

func (g *stubGateway) SignIn(ctx context.Context, email, secret string) (models.Identity, error) {
	if err := g.fail(); err != nil {
		return models.Identity{}, err
	}
	return g.identity, nil
}

func (g *stubGateway) SignUp(ctx context.Context, email, secret string) (models.Identity, error) {
	return g.SignIn(ctx, email, secret)
}

func (g *stubGateway) SendPasswordReset(ctx context.Context, email string) error {
	if err := g.fail(); err != nil {
		return err
	}
	g.resets = append(g.resets, email)
	return nil
}

type testApp struct {
	*App
	gw  *stubGateway
	clk *testingclock.FakeClock
	out *syncBuffer
}

// newTestApp builds an App reading input and secrets from the same script.
func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()

	db, err := localdb.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gw := &stubGateway{identity: models.Identity{ID: "u1", Email: "test@example.com"}}
	clk := testingclock.NewFakeClock(time.Now())
	out := &syncBuffer{}

	app := newApp(logging.NewDiscard(), db, gw, translate.New("en"), navigation.NewDelayed(clk),
		strings.NewReader(input), out)

	origPassword := getPassword
	getPassword = func(w io.Writer, prompt string) ([]byte, error) {
		s, err := GetSimpleText(app.reader, prompt, w)
		return []byte(s), err
	}
	t.Cleanup(func() {
		getPassword = origPassword
		app.Close()
	})

	return &testApp{App: app, gw: gw, clk: clk, out: out}
}

func (a *testApp) screen() models.ScreenKind {
	s, _ := a.router.current()
	return s
}

func TestApp_SignUpStoresAndPersistsSession(t *testing.T) {
	a := newTestApp(t, "test@example.com\npassword123\npassword123\n")
	ctx := context.Background()
	a.start(ctx)

	require.NoError(t, a.SignUp(ctx))

	got, ok := a.store.Get()
	require.True(t, ok)
	assert.Equal(t, models.Identity{ID: "u1", Email: "test@example.com"}, got)
	assert.Contains(t, a.out.String(), "Creating account...")
	assert.Contains(t, a.out.String(), "Signed in: test@example.com")
	assert.Equal(t, "sign-up test@example.com", a.status())

	var uid []byte
	require.NoError(t, a.db.QueryRow(`SELECT value FROM metadata WHERE key = 'session.uid'`).Scan(&uid))
	assert.Equal(t, "u1", string(uid))
}

func TestApp_SignInFailureShowsGenericMessage(t *testing.T) {
	a := newTestApp(t, "test@example.com\nwrong-pass\n")
	a.gw.code = "auth/user-not-found"
	ctx := context.Background()
	a.start(ctx)

	err := a.SignIn(ctx)

	var failure translate.Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, translate.InvalidCredentials, failure.Category)
	assert.Contains(t, a.out.String(), "Authentication failed.")
	assert.False(t, a.isSignedIn())
}

func TestApp_ValidationErrorsArePrinted(t *testing.T) {
	a := newTestApp(t, "not-an-email\n123\n124\n")
	ctx := context.Background()
	a.start(ctx)

	require.NoError(t, a.SignUp(ctx))

	out := a.out.String()
	assert.Contains(t, out, "Email: Email must be a valid email")
	assert.Contains(t, out, "Password: Password must be at least 6 characters")
	assert.Contains(t, out, "Confirm Password: Passwords must match")
	assert.False(t, a.isSignedIn())
}

func TestApp_ResetRedirectsToSignIn(t *testing.T) {
	a := newTestApp(t, "test@example.com\n")
	ctx := context.Background()
	a.start(ctx)

	require.NoError(t, a.ResetPassword(ctx))
	assert.Equal(t, []string{"test@example.com"}, a.gw.resets)
	assert.Contains(t, a.out.String(), "Password reset email sent.")
	assert.Equal(t, models.ScreenResetRequest, a.screen())

	assert.ErrorIs(t, a.ResetPassword(ctx), flow.ErrSubmitDisabled)
	assert.Len(t, a.gw.resets, 1)

	a.clk.Step(flow.ResetRedirectDelay)
	require.Eventually(t, func() bool { return a.screen() == models.ScreenSignIn }, time.Second, 5*time.Millisecond)
}

func TestApp_LeavingResetCancelsRedirect(t *testing.T) {
	a := newTestApp(t, "test@example.com\n")
	ctx := context.Background()
	a.start(ctx)

	require.NoError(t, a.ResetPassword(ctx))
	a.router.Navigate(models.RouteSignUp)

	a.clk.Step(flow.ResetRedirectDelay)
	require.Never(t, func() bool { return a.screen() != models.ScreenSignUp }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestApp_RestoreAndSignOut(t *testing.T) {
	a := newTestApp(t, "")
	ctx := context.Background()
	require.NoError(t, a.sessions.Save(ctx, models.Identity{ID: "u9", Email: "back@example.com"}))

	a.start(ctx)
	require.True(t, a.isSignedIn())
	assert.Contains(t, a.out.String(), "Signed in: back@example.com")

	a.router.Navigate(models.RouteSignUp)
	require.NoError(t, a.SignOut(ctx))
	assert.False(t, a.isSignedIn())
	assert.Equal(t, models.ScreenSignIn, a.screen())
	assert.Contains(t, a.out.String(), "Signed out")

	require.NoError(t, a.WhoAmI(ctx))
}

func TestApp_RunREPL(t *testing.T) {
	a := newTestApp(t, "signin\ntest@example.com\npassword123\nwhoami\nexit\n")

	a.Run(context.Background())

	out := a.out.String()
	assert.Contains(t, out, "Welcome back!")
	assert.Contains(t, out, "Signing in...")
	assert.Contains(t, out, "test@example.com (u1)")
	assert.Contains(t, out, "Bye!")
}
