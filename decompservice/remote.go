// Package decompservice exposes hand decomposition as a pitaya remote
// component, dispatched by protobuf type URL the same way
// gamebase/service.Remote dispatches round-engine requests — but payloads
// are carried in the well-known Struct/Any types instead of a
// project-specific proto schema, so this package has no dependency on
// any private wire definitions.
package decompservice

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/kevin-chtw/riichi-decomp/decomposer"
	"github.com/kevin-chtw/riichi-decomp/histogram"
	"github.com/kevin-chtw/riichi-decomp/tile"
	"github.com/kevin-chtw/riichi-decomp/utils"
	"github.com/sirupsen/logrus"
	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type handlerFunc func(*decomposer.Decomposer, context.Context, proto.Message) (proto.Message, error)

// Remote is the pitaya component registering the decompose verb.
type Remote struct {
	component.Base
	app      pitaya.Pitaya
	dec      *decomposer.Decomposer
	log      interfaces.Logger
	handlers map[string]handlerFunc
}

// NewRemote builds a Remote around its own Decomposer (built eagerly, so
// the first real request doesn't pay the table-generation cost) and its
// own rotating-file logger, the same stack utils.Logger builds for every
// other component in the corpus. Table generation is logged once here,
// the same way ting.go's InitTingCore would report its own LUT build.
func NewRemote(app pitaya.Pitaya, level logrus.Level) *Remote {
	log := utils.Logger(level)
	start := time.Now()
	dec := decomposer.New()
	cKeys, wKeys := dec.Stats()
	log.Infof("decomposer tables built in %s (%d C-Table keys, %d W-Table keys)",
		time.Since(start), cKeys, wKeys)

	return &Remote{
		app:      app,
		dec:      dec,
		log:      log,
		handlers: make(map[string]handlerFunc),
	}
}

// Init registers the supported request type. A single entry today, but
// the map stays open to future verbs (e.g. a shanten-only endpoint)
// without changing Decompose's dispatch logic.
func (r *Remote) Init() {
	r.handlers[utils.TypeUrl(&structpb.Struct{})] = handleDecompose
}

// Decompose handles one request: unwrap the Any, dispatch on its type
// URL, and wrap the result back into an Any.
func (r *Remote) Decompose(ctx context.Context, req *anypb.Any) (res *anypb.Any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Errorf("panic recovered %s\n%s", rec, string(debug.Stack()))
			err = fmt.Errorf("decompservice: %v", rec)
		}
	}()
	if req == nil {
		return nil, errors.New("nil request")
	}

	msg, err := req.UnmarshalNew()
	if err != nil {
		return nil, err
	}

	handler, ok := r.handlers[req.TypeUrl]
	if !ok {
		return nil, errors.New("invalid request type")
	}
	rsp, err := handler(r.dec, ctx, msg)
	if err != nil {
		return nil, err
	}
	return anypb.New(rsp)
}

func handleDecompose(dec *decomposer.Decomposer, _ context.Context, msg proto.Message) (proto.Message, error) {
	req, ok := msg.(*structpb.Struct)
	if !ok {
		return nil, errors.New("decompservice: expected a Struct request")
	}

	shorthand, err := tilesField(req)
	if err != nil {
		return nil, err
	}
	tiles, err := tile.ParseAll(shorthand)
	if err != nil {
		return nil, err
	}
	hand, err := histogram.FromTiles(tiles)
	if err != nil {
		return nil, err
	}
	if err := decomposer.ValidateHand(hand); err != nil {
		return nil, err
	}

	return structFromWaitSet(dec.Decompose(hand))
}

func tilesField(req *structpb.Struct) (string, error) {
	v, ok := req.GetFields()["tiles"]
	if !ok {
		return "", errors.New(`decompservice: missing "tiles" field`)
	}
	if s := v.GetStringValue(); s != "" {
		return s, nil
	}
	var out string
	for _, item := range v.GetListValue().GetValues() {
		out += item.GetStringValue()
	}
	if out == "" {
		return "", errors.New(`decompservice: "tiles" field must be a shorthand string or list of strings`)
	}
	return out, nil
}

func structFromWaitSet(ws decomposer.WaitSet) (*structpb.Struct, error) {
	regular := make([]any, len(ws.Regular))
	for i, w := range ws.Regular {
		regular[i] = w.String()
	}
	irregular := make([]any, len(ws.Irregular))
	for i, w := range ws.Irregular {
		irregular[i] = w.Kind.String()
	}
	waitingOn := ws.WaitingOn.Tiles()
	waiting := make([]any, len(waitingOn))
	for i, t := range waitingOn {
		waiting[i] = t.String()
	}

	return structpb.NewStruct(map[string]any{
		"regular":    regular,
		"irregular":  irregular,
		"waiting_on": waiting,
	})
}
