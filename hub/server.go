package hub

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Server is a small HTTP front over the hub store for browsing the
// uploaded datasets
type Server struct {
	client *Client
	server *http.Server
}

func NewServer(addr string, client *Client) *Server {
	s := &Server{client: client}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/datasets", s.handleList)
	r.GET("/datasets/:owner/:name/info", s.handleInfo)
	r.GET("/datasets/:owner/:name/stats", s.handleStats)
	r.GET("/datasets/:owner/:name/tags", s.handleTags)
	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}
	return s
}

func (s *Server) handleList(c *gin.Context) {
	repos, err := s.client.ListDatasets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"datasets": repos})
}

func (s *Server) handleInfo(c *gin.Context) {
	info, err := s.client.Info(c.Request.Context(), repoID(c))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.client.Stats(c.Request.Context(), repoID(c))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stats not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleTags(c *gin.Context) {
	tags, err := s.client.Tags(c.Request.Context(), repoID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

func repoID(c *gin.Context) string {
	return c.Param("owner") + "/" + c.Param("name")
}

// Start blocks serving requests until Shutdown is called
func (s *Server) Start() error {
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
