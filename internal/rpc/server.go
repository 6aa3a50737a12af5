package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/kaedeworks/content-portal/internal/blog"
)

func New(logger *slog.Logger, blogManager *blog.Manager) *zenrpc.Server {

	rpcService := NewBlogService(blogManager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("blog", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "content-portal", nil))

	return rpcServer
}
