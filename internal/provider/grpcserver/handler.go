package grpcserver

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/clubauth/internal/client/models"
	"github.com/dmitrijs2005/clubauth/internal/common"
	"github.com/dmitrijs2005/clubauth/internal/provider"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func (s *GRPCServer) SignIn(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	identity, token, err := s.directory.SignIn(ctx, stringField(req, common.FieldEmail), stringField(req, common.FieldSecret))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return credentialResponse(identity, token)
}

func (s *GRPCServer) SignUp(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	identity, token, err := s.directory.SignUp(ctx, stringField(req, common.FieldEmail), stringField(req, common.FieldSecret))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "uid", identity.ID)
	return credentialResponse(identity, token)
}

func (s *GRPCServer) SendPasswordReset(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	if err := s.directory.SendPasswordReset(ctx, stringField(req, common.FieldEmail)); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &structpb.Struct{}, nil
}

func stringField(req *structpb.Struct, key string) string {
	return req.GetFields()[key].GetStringValue()
}

func credentialResponse(identity models.Identity, token string) (*structpb.Struct, error) {
	resp, err := structpb.NewStruct(map[string]any{
		common.FieldUserID:  identity.ID,
		common.FieldEmail:   identity.Email,
		common.FieldIDToken: token,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	return resp, nil
}

var statusCodes = map[string]codes.Code{
	models.CodeInvalidEmail:        codes.InvalidArgument,
	models.CodeWeakPassword:        codes.InvalidArgument,
	models.CodeUserNotFound:        codes.NotFound,
	models.CodeWrongPassword:       codes.Unauthenticated,
	models.CodeInvalidCredential:   codes.Unauthenticated,
	models.CodeUserDisabled:        codes.PermissionDenied,
	models.CodeEmailAlreadyInUse:   codes.AlreadyExists,
	models.CodeTooManyRequests:     codes.ResourceExhausted,
	models.CodeOperationNotAllowed: codes.FailedPrecondition,
}

// toStatus attaches the provider code as ErrorInfo so the client can
// recover it verbatim.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	var pe *provider.Error
	if !errors.As(err, &pe) {
		s.logger.Error(ctx, err.Error())
		return status.Error(codes.Internal, "internal error")
	}

	code, ok := statusCodes[pe.Code]
	if !ok {
		code = codes.Unknown
	}

	st := status.New(code, pe.Code)
	detailed, derr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: pe.Code,
		Domain: common.ProviderErrorDomain,
	})
	if derr != nil {
		return st.Err()
	}
	return detailed.Err()
}
