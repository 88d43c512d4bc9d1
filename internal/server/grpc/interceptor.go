package grpc

import (
	"context"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// identityInterceptor attaches the identity carried by the _token metadata
// key. Like the HTTP middleware it never rejects a call.
func (s *GRPCServer) identityInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.TokenParamName); len(values) > 0 {
			token = values[0]
		}
	}

	ctx = s.tokens.Authenticate(ctx, token)

	if id := auth.IdentityFromContext(ctx); id != nil {
		s.logger.Debug(ctx, "rpc", "method", info.FullMethod, "username", id.Username)
	} else {
		s.logger.Debug(ctx, "rpc", "method", info.FullMethod)
	}

	return handler(ctx, req)
}
