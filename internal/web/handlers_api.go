package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"zigbee-go-zcl/internal/node"
	"zigbee-go-zcl/internal/zcl"
)

// maxAttributes bounds one read request.
const maxAttributes = 50

type attributeView struct {
	ID       uint16 `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Readable bool   `json:"readable"`
	Writable bool   `json:"writable"`
}

type commandView struct {
	ID        uint8  `json:"id"`
	Name      string `json:"name"`
	Direction string `json:"direction,omitempty"`
	Global    bool   `json:"global,omitempty"`
	Response  bool   `json:"response,omitempty"`
}

type clusterView struct {
	ID         uint16          `json:"id"`
	Name       string          `json:"name"`
	Attributes []attributeView `json:"attributes"`
	Commands   []commandView   `json:"commands"`
}

func newClusterView(def *zcl.ClusterDef) clusterView {
	v := clusterView{ID: def.ID, Name: def.Name}
	for _, a := range def.AllAttributes() {
		v.Attributes = append(v.Attributes, attributeView{
			ID:       a.ID,
			Name:     a.Name,
			Type:     a.Type.Name,
			Readable: a.IsReadable(),
			Writable: a.IsWritable(),
		})
	}
	for _, c := range def.AllCommands() {
		v.Commands = append(v.Commands, commandView{
			ID:        c.ID,
			Name:      c.Name,
			Direction: string(c.Direction),
			Global:    c.Global,
			Response:  c.IsResponse,
		})
	}
	return v
}

func (s *Server) handleAPIListClusters(w http.ResponseWriter, _ *http.Request) {
	defs := s.node.Catalog().Registry().All()
	out := make([]clusterView, 0, len(defs))
	for _, def := range defs {
		out = append(out, newClusterView(def))
	}
	s.writeJSON(w, http.StatusOK, out)
}

type bindingView struct {
	Cluster string `json:"cluster"`
	ID      uint16 `json:"id"`
	Script  string `json:"script,omitempty"`
}

type endpointView struct {
	ID            uint8         `json:"id"`
	InputClusters []string      `json:"input_clusters"`
	Bindings      []bindingView `json:"bindings"`
}

func (s *Server) handleAPIListEndpoints(w http.ResponseWriter, _ *http.Request) {
	eps := s.node.Endpoints()
	out := make([]endpointView, 0, len(eps))
	for _, ep := range eps {
		v := endpointView{ID: ep.ID(), InputClusters: []string{}, Bindings: []bindingView{}}
		for _, c := range ep.Clusters() {
			v.InputClusters = append(v.InputClusters, c.Name())
		}
		for _, b := range ep.Bindings() {
			bv := bindingView{Cluster: b.Def().Name, ID: b.Def().ID}
			if s.scripts != nil {
				bv.Script, _ = s.scripts.Attached(ep.ID(), b.Def().Name)
			}
			v.Bindings = append(v.Bindings, bv)
		}
		out = append(out, v)
	}
	s.writeJSON(w, http.StatusOK, out)
}

type bindingStateView struct {
	Endpoint   uint8          `json:"endpoint"`
	Cluster    string         `json:"cluster"`
	Attributes map[string]any `json:"attributes"`
	Errors     map[string]any `json:"errors,omitempty"`
	Reportable []string       `json:"reportable"`
}

// handleAPIGetBinding reports the current values of every readable
// attribute the binding serves.
func (s *Server) handleAPIGetBinding(w http.ResponseWriter, r *http.Request) {
	ep, ok := s.endpoint(w, r)
	if !ok {
		return
	}
	name := r.PathValue("cluster")
	b, ok := ep.Binding(name)
	if !ok {
		s.writeError(w, http.StatusNotFound, "binding not found")
		return
	}
	out := bindingStateView{Endpoint: ep.ID(), Cluster: name, Attributes: map[string]any{}, Reportable: []string{}}
	for _, a := range b.Def().AllAttributes() {
		v, err := b.Read(r.Context(), a.Name)
		switch {
		case errors.Is(err, zcl.ErrUnknownAttribute), zcl.IsStatus(err, zcl.StatusUnsupportedAttribute):
			continue
		case err != nil:
			if out.Errors == nil {
				out.Errors = map[string]any{}
			}
			out.Errors[a.Name] = err.Error()
			continue
		}
		out.Attributes[a.Name] = v
		if b.IsReportable(a.Name) {
			out.Reportable = append(out.Reportable, a.Name)
		}
	}
	sort.Strings(out.Reportable)
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) endpoint(w http.ResponseWriter, r *http.Request) (*node.Endpoint, bool) {
	id, err := strconv.ParseUint(r.PathValue("ep"), 10, 8)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid endpoint")
		return nil, false
	}
	ep, ok := s.node.Endpoint(uint8(id))
	if !ok {
		s.writeError(w, http.StatusNotFound, "endpoint not found")
		return nil, false
	}
	return ep, true
}

func (s *Server) cluster(w http.ResponseWriter, r *http.Request) (*node.Cluster, bool) {
	ep, ok := s.endpoint(w, r)
	if !ok {
		return nil, false
	}
	c, ok := ep.Cluster(r.PathValue("cluster"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "cluster not available on endpoint")
		return nil, false
	}
	return c, true
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// writeClientError maps a failed client operation to a response.
func (s *Server) writeClientError(w http.ResponseWriter, op string, err error) {
	var se *zcl.StatusError
	switch {
	case errors.As(err, &se):
		s.writeJSON(w, http.StatusBadGateway, map[string]string{"error": se.Detail(), "status": se.Status.String()})
	case errors.Is(err, node.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		s.writeError(w, http.StatusGatewayTimeout, "timeout waiting for response")
	case errors.Is(err, zcl.ErrUnknownCommand), errors.Is(err, zcl.ErrUnknownAttribute),
		errors.Is(err, zcl.ErrInvalidValue), errors.Is(err, zcl.ErrUnknownField),
		errors.Is(err, zcl.ErrManufacturerMismatch):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error(op, "err", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// readRequest names the attributes to read; an empty list reads every
// attribute the cluster declares.
type readRequest struct {
	Attributes []string `json:"attributes"`
}

func (s *Server) handleAPIReadAttributes(w http.ResponseWriter, r *http.Request) {
	c, ok := s.cluster(w, r)
	if !ok {
		return
	}
	var req readRequest
	if !s.decode(w, r, &req) {
		return
	}
	if len(req.Attributes) > maxAttributes {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("attributes limited to %d", maxAttributes))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	values, err := c.ReadAttributes(ctx, req.Attributes)
	if err != nil {
		s.writeClientError(w, "read attributes", err)
		return
	}
	s.writeJSON(w, http.StatusOK, values)
}

type writeRequest struct {
	Attributes map[string]any `json:"attributes"`
}

func (s *Server) handleAPIWriteAttributes(w http.ResponseWriter, r *http.Request) {
	c, ok := s.cluster(w, r)
	if !ok {
		return
	}
	var req writeRequest
	if !s.decode(w, r, &req) {
		return
	}
	if len(req.Attributes) == 0 {
		s.writeError(w, http.StatusBadRequest, "attributes must not be empty")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := c.WriteAttributes(ctx, req.Attributes); err != nil {
		s.writeClientError(w, "write attributes", err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type commandRequest struct {
	Command        string   `json:"command"`
	Args           zcl.Args `json:"args"`
	NoResponse     bool     `json:"no_response"`
	ManufacturerID uint16   `json:"manufacturer_id"`
}

func (s *Server) handleAPISendCommand(w http.ResponseWriter, r *http.Request) {
	c, ok := s.cluster(w, r)
	if !ok {
		return
	}
	var req commandRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Command == "" {
		s.writeError(w, http.StatusBadRequest, "command is required")
		return
	}

	var opts []node.Option
	if req.NoResponse {
		opts = append(opts, node.WithoutResponse())
	}
	if req.ManufacturerID != 0 {
		opts = append(opts, node.WithManufacturerID(req.ManufacturerID))
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	res, err := c.Invoke(ctx, req.Command, req.Args, opts...)
	if err != nil {
		s.writeClientError(w, "send command", err)
		return
	}
	if res == nil {
		res = zcl.Args{}
	}
	s.writeJSON(w, http.StatusOK, res)
}
