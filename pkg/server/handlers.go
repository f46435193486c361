package server

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/router"
)

const htmlContentType = "text/html; charset=utf-8"

// EventResponse is the answer to POST /events. Redraw maps each changed day
// to the new inner markup of its task list.
type EventResponse struct {
	Handled        bool               `json:"handled"`
	Redraw         map[day.Key]string `json:"redraw"`
	ClearInput     bool               `json:"clearInput"`
	Blur           bool               `json:"blur"`
	PreventDefault bool               `json:"preventDefault"`
	DropTargets    []day.Key          `json:"dropTargets"`
}

func (s *Server) page(c *gin.Context) {
	var buf bytes.Buffer
	if err := s.renderer.Page(&buf, s.store.Snapshot(), s.store.Now()); err != nil {
		getLogger(c).Error("render page", zap.Error(err))
		c.String(http.StatusInternalServerError, "template error")
		return
	}
	c.Data(http.StatusOK, htmlContentType, buf.Bytes())
}

func (s *Server) day(c *gin.Context) {
	d, err := day.Parse(c.Param("day"), s.store.Now())
	if err != nil {
		jsonError(c, http.StatusNotFound, "unknown day", err.Error())
		return
	}
	html, err := s.renderer.DayHTML(d, s.store.Tasks(d))
	if err != nil {
		getLogger(c).Error("render day", zap.Stringer("day", d), zap.Error(err))
		c.String(http.StatusInternalServerError, "template error")
		return
	}
	c.Data(http.StatusOK, htmlContentType, []byte(html))
}

func (s *Server) events(c *gin.Context) {
	var ev router.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid event", err.Error())
		return
	}
	if s.limiter != nil && counted(ev) && !s.limiter.allow(c) {
		return
	}
	res := s.router.Dispatch(ev)

	out := EventResponse{
		Handled:        res.Handled,
		Redraw:         make(map[day.Key]string, len(res.Redraw)),
		ClearInput:     res.ClearInput,
		Blur:           res.Blur,
		PreventDefault: res.PreventDefault,
		DropTargets:    res.DropTargets,
	}
	for _, d := range res.Redraw {
		html, err := s.renderer.DayHTML(d, s.store.Tasks(d))
		if err != nil {
			getLogger(c).Error("render day", zap.Stringer("day", d), zap.Error(err))
			continue
		}
		out.Redraw[d] = html
	}
	c.JSON(http.StatusOK, out)
}

// counted reports whether ev uses up a rate limit token. Unrouted events and
// the events that continue a drag do not.
func counted(ev router.Event) bool {
	if !router.Routed(ev) {
		return false
	}
	switch ev.Type {
	case router.DragOver, router.DragEnter, router.DragLeave, router.Drop, router.DragEnd:
		return false
	}
	return true
}

func (s *Server) week(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Snapshot())
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"tasks":    s.store.Count(),
		"failures": s.store.Failures(),
	})
}
