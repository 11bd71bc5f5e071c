package decompservice_test

import (
	"context"
	"testing"

	"github.com/kevin-chtw/riichi-decomp/decompservice"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestDecomposeRoundTrip(t *testing.T) {
	r := decompservice.NewRemote(nil, logrus.InfoLevel)
	r.Init()

	req, err := structpb.NewStruct(map[string]any{"tiles": "111222333444m5p"})
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}
	any, err := anypb.New(req)
	if err != nil {
		t.Fatalf("anypb.New: %v", err)
	}

	res, err := r.Decompose(context.Background(), any)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}

	var out structpb.Struct
	if err := res.UnmarshalTo(&out); err != nil {
		t.Fatalf("UnmarshalTo: %v", err)
	}
	regular := out.GetFields()["regular"].GetListValue().GetValues()
	if len(regular) != 3 {
		t.Fatalf("got %d regular waits, want 3: %+v", len(regular), out.GetFields())
	}
}

func TestDecomposeRejectsNilRequest(t *testing.T) {
	r := decompservice.NewRemote(nil, logrus.InfoLevel)
	r.Init()
	if _, err := r.Decompose(context.Background(), nil); err == nil {
		t.Errorf("Decompose(nil): got nil error, want one")
	}
}

func TestDecomposeRejectsUnknownType(t *testing.T) {
	r := decompservice.NewRemote(nil, logrus.InfoLevel)
	r.Init()

	any, err := anypb.New(&structpb.Value{})
	if err != nil {
		t.Fatalf("anypb.New: %v", err)
	}
	if _, err := r.Decompose(context.Background(), any); err == nil {
		t.Errorf("Decompose with an unregistered type URL: got nil error, want one")
	}
}
