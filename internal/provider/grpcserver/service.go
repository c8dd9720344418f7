package grpcserver

import (
	"context"

	"github.com/dmitrijs2005/clubauth/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// identityService is the handler set behind identityServiceDesc.
type identityService interface {
	SignIn(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SignUp(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SendPasswordReset(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var identityServiceDesc = grpc.ServiceDesc{
	ServiceName: common.IdentityServiceName,
	HandlerType: (*identityService)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SignIn", Handler: unaryHandler(common.MethodSignIn, identityService.SignIn)},
		{MethodName: "SignUp", Handler: unaryHandler(common.MethodSignUp, identityService.SignUp)},
		{MethodName: "SendPasswordReset", Handler: unaryHandler(common.MethodSendPasswordReset, identityService.SendPasswordReset)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "clubauth/identity.proto",
}

type structMethod func(identityService, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call structMethod) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := &structpb.Struct{}
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(identityService), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(identityService), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}
