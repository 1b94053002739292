package web

import (
	"errors"
	"io/fs"
	"net/http"

	"zigbee-go-zcl/internal/script"
	"zigbee-go-zcl/internal/zcl"
)

func (s *Server) scriptsEnabled(w http.ResponseWriter) bool {
	if s.scripts == nil || s.scriptMgr == nil {
		s.writeError(w, http.StatusNotFound, "scripts not enabled")
		return false
	}
	return true
}

func (s *Server) writeScriptError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, script.ErrInvalidID):
		s.writeError(w, http.StatusBadRequest, "invalid script id")
	case errors.Is(err, fs.ErrNotExist):
		s.writeError(w, http.StatusNotFound, "script not found")
	default:
		s.logger.Error(op, "err", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (s *Server) handleAPIListScripts(w http.ResponseWriter, _ *http.Request) {
	if !s.scriptsEnabled(w) {
		return
	}
	scripts, err := s.scriptMgr.List()
	if err != nil {
		s.writeScriptError(w, "list scripts", err)
		return
	}
	if scripts == nil {
		scripts = []*script.Script{}
	}
	s.writeJSON(w, http.StatusOK, scripts)
}

func (s *Server) handleAPIGetScript(w http.ResponseWriter, r *http.Request) {
	if !s.scriptsEnabled(w) {
		return
	}
	sc, err := s.scriptMgr.Get(r.PathValue("id"))
	if err != nil {
		s.writeScriptError(w, "get script", err)
		return
	}
	s.writeJSON(w, http.StatusOK, sc)
}

// handleAPISaveScript stores a script under the id in the path. Bindings
// running the previous version keep it until they are attached again.
func (s *Server) handleAPISaveScript(w http.ResponseWriter, r *http.Request) {
	if !s.scriptsEnabled(w) {
		return
	}
	var sc script.Script
	if !s.decode(w, r, &sc) {
		return
	}
	sc.ID = r.PathValue("id")
	if sc.Meta.Name == "" {
		sc.Meta.Name = sc.ID
	}
	saved, err := s.scriptMgr.Save(&sc)
	if err != nil {
		s.writeScriptError(w, "save script", err)
		return
	}
	s.writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleAPIDeleteScript(w http.ResponseWriter, r *http.Request) {
	if !s.scriptsEnabled(w) {
		return
	}
	if err := s.scriptMgr.Delete(r.PathValue("id")); err != nil {
		s.writeScriptError(w, "delete script", err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type runScriptRequest struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Cluster string `json:"cluster"`
}

// handleAPIRunScript executes a stored script or inline code in a scratch
// VM, optionally against a throwaway binding of the named cluster.
func (s *Server) handleAPIRunScript(w http.ResponseWriter, r *http.Request) {
	if !s.scriptsEnabled(w) {
		return
	}
	var req runScriptRequest
	if !s.decode(w, r, &req) {
		return
	}
	var def *zcl.ClusterDef
	if req.Cluster != "" {
		if def = s.node.Catalog().Registry().Lookup(req.Cluster); def == nil {
			s.writeError(w, http.StatusBadRequest, "unknown cluster")
			return
		}
	}
	switch {
	case req.Code != "":
		s.writeJSON(w, http.StatusOK, s.scripts.RunLuaCode(req.Code, def))
	case req.ID != "":
		s.writeJSON(w, http.StatusOK, s.scripts.RunScript(req.ID, def))
	default:
		s.writeError(w, http.StatusBadRequest, "code or id is required")
	}
}

type attachScriptRequest struct {
	ID string `json:"id"`
}

func (s *Server) handleAPIAttachScript(w http.ResponseWriter, r *http.Request) {
	if !s.scriptsEnabled(w) {
		return
	}
	ep, ok := s.endpoint(w, r)
	if !ok {
		return
	}
	b, ok := ep.Binding(r.PathValue("cluster"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "binding not found")
		return
	}
	var req attachScriptRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.scripts.Attach(req.ID, ep.ID(), b); err != nil {
		if errors.Is(err, script.ErrInvalidID) || errors.Is(err, fs.ErrNotExist) {
			s.writeScriptError(w, "attach script", err)
			return
		}
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	id, _ := s.scripts.Attached(ep.ID(), b.Def().Name)
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "script": id})
}

func (s *Server) handleAPIDetachScript(w http.ResponseWriter, r *http.Request) {
	if !s.scriptsEnabled(w) {
		return
	}
	ep, ok := s.endpoint(w, r)
	if !ok {
		return
	}
	cluster := r.PathValue("cluster")
	if _, ok := ep.Binding(cluster); !ok {
		s.writeError(w, http.StatusNotFound, "binding not found")
		return
	}
	s.scripts.Detach(ep.ID(), cluster)
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
