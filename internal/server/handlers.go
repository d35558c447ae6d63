package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/roughcut/internal/domain"
	"github.com/cutroom/roughcut/internal/edl"
	"github.com/cutroom/roughcut/internal/timecode"
)

// CreateTimelineRequest is the body for POST /timelines.
type CreateTimelineRequest struct {
	Name       string `json:"name" binding:"required"`
	Framerate  int    `json:"framerate"`
	Resolution string `json:"resolution"`
}

// AddAssetsRequest is the body for POST /timelines/:id/assets.
type AddAssetsRequest struct {
	Assets []domain.Asset `json:"assets" binding:"required"`
}

// ExportRequest is the body for POST /timelines/:id/export.
type ExportRequest struct {
	Format string `json:"format"`
}

func (s *Server) createTimeline(c *gin.Context) {
	var req CreateTimelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Framerate < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "framerate must be a positive integer"})
		return
	}

	timeline, err := s.store.Create(c.Request.Context(), domain.Timeline{
		Name:       req.Name,
		Framerate:  req.Framerate,
		Resolution: req.Resolution,
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	slog.Info("Created timeline", "id", timeline.ID, "name", timeline.Name)
	c.JSON(http.StatusCreated, timeline)
}

func (s *Server) listTimelines(c *gin.Context) {
	timelines, err := s.store.List(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"timelines": timelines, "total": len(timelines)})
}

func (s *Server) getTimeline(c *gin.Context) {
	timeline, err := s.store.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, timeline)
}

func (s *Server) deleteTimeline(c *gin.Context) {
	if err := s.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) addAssets(c *gin.Context) {
	id := c.Param("id")

	var req AddAssetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Reject registrations against unknown timelines early.
	if _, err := s.store.Load(c.Request.Context(), id); err != nil {
		s.abortWithError(c, err)
		return
	}

	if err := s.catalog.PutAssets(c.Request.Context(), id, req.Assets); err != nil {
		s.abortWithError(c, err)
		return
	}

	slog.Info("Registered assets", "timeline", id, "count", len(req.Assets))
	c.JSON(http.StatusCreated, gin.H{"registered": len(req.Assets)})
}

func (s *Server) listAssets(c *gin.Context) {
	assets, err := s.catalog.ListAssets(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assets": assets, "total": len(assets)})
}

func (s *Server) assembleTimeline(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	var opts domain.AssemblyOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeline, err := s.store.Load(ctx, id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	assets, err := s.catalog.ListAssets(ctx, id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	assembled, err := s.engine.Assemble(timeline, assets, opts)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	saved, err := s.store.Save(ctx, assembled)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	duration, err := timecode.DisplayTime(saved.Duration)
	if err != nil {
		duration = "unknown"
	}
	slog.Info("Assembled timeline",
		"id", saved.ID,
		"strategy", opts.Strategy,
		"clips", saved.ClipCount(),
		"duration", duration)
	c.JSON(http.StatusOK, saved)
}

func (s *Server) exportTimeline(c *gin.Context) {
	id := c.Param("id")

	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Format == "" {
		req.Format = string(edl.FormatCMX3600)
	}

	timeline, err := s.store.Load(c.Request.Context(), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	result, err := s.exporter.Export(c.Request.Context(), timeline, edl.Format(req.Format))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	slog.Info("Exported timeline", "id", id, "filename", result.Filename, "location", result.Location)
	c.JSON(http.StatusOK, result)
}
