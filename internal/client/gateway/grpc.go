package gateway

import (
	"context"
	"time"

	"github.com/dmitrijs2005/clubauth/internal/client/models"
	"github.com/dmitrijs2005/clubauth/internal/common"
	"github.com/dmitrijs2005/clubauth/internal/idtoken"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// GRPCGateway is an AuthGateway backed by the identity gRPC service.
type GRPCGateway struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
}

// NewGRPCGateway creates a client for endpointURL. A positive timeout bounds
// every call. Extra dial options are appended after the defaults (plaintext
// transport), so tests can inject a bufconn dialer.
func NewGRPCGateway(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCGateway, error) {
	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &GRPCGateway{endpointURL: endpointURL, timeout: timeout, conn: conn}, nil
}

func (g *GRPCGateway) SignIn(ctx context.Context, email, secret string) (models.Identity, error) {
	return g.authenticate(ctx, common.MethodSignIn, email, secret)
}

func (g *GRPCGateway) SignUp(ctx context.Context, email, secret string) (models.Identity, error) {
	return g.authenticate(ctx, common.MethodSignUp, email, secret)
}

func (g *GRPCGateway) SendPasswordReset(ctx context.Context, email string) error {
	req, err := structpb.NewStruct(map[string]any{common.FieldEmail: email})
	if err != nil {
		return providerError(models.CodeInternalError, err)
	}
	return g.invoke(ctx, common.MethodSendPasswordReset, req, &structpb.Struct{})
}

// Close releases the underlying connection.
func (g *GRPCGateway) Close() error {
	return g.conn.Close()
}

func (g *GRPCGateway) authenticate(ctx context.Context, method, email, secret string) (models.Identity, error) {
	req, err := structpb.NewStruct(map[string]any{
		common.FieldEmail:  email,
		common.FieldSecret: secret,
	})
	if err != nil {
		return models.Identity{}, providerError(models.CodeInternalError, err)
	}

	resp := &structpb.Struct{}
	if err := g.invoke(ctx, method, req, resp); err != nil {
		return models.Identity{}, err
	}

	token := resp.GetFields()[common.FieldIDToken].GetStringValue()
	identity, err := idtoken.Read(token)
	if err != nil {
		return models.Identity{}, providerError(models.CodeInternalError, err)
	}
	return identity, nil
}

func (g *GRPCGateway) invoke(ctx context.Context, method string, req, resp *structpb.Struct) error {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	if err := g.conn.Invoke(ctx, method, req, resp); err != nil {
		return g.mapError(err)
	}
	return nil
}

// mapError prefers the provider code carried in ErrorInfo details and falls
// back to the status code.
func (g *GRPCGateway) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return providerError(models.CodeNetworkRequestFailed, err)
	}

	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == common.ProviderErrorDomain {
			return providerError(info.GetReason(), err)
		}
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return providerError(models.CodeNetworkRequestFailed, err)
	case codes.Unauthenticated, codes.PermissionDenied:
		return providerError(models.CodeInvalidCredential, err)
	case codes.ResourceExhausted:
		return providerError(models.CodeTooManyRequests, err)
	default:
		return providerError(models.CodeInternalError, err)
	}
}
