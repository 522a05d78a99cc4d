/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apperror

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDefaultRenderer_Payload(t *testing.T) {
	e := NotFound("user 7").
		WithField("resource", "user").
		WithField("id", 7)

	resp := e.Render()
	if resp.StatusCode != 404 {
		t.Fatalf("StatusCode = %d", resp.StatusCode)
	}
	if resp.ContentType != "" || resp.Headers != nil {
		t.Fatalf("default renderer must not set content type or headers: %+v", resp)
	}

	b, err := json.Marshal(resp.Payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"error":"Not Found","code":404,"message":"user 7","resource":"user","id":7}`
	if string(b) != want {
		t.Fatalf("payload = %s, want %s", b, want)
	}
}

func TestDefaultRenderer_UnknownPhrase(t *testing.T) {
	obj := New(499, "client closed").Render().Payload.(Object)
	if v, _ := obj.Get("error"); v != "Unknown" {
		t.Fatalf("error = %v, want Unknown", v)
	}
}

func TestDefaultRenderer_SkipsReservedKeysAndFunctions(t *testing.T) {
	e := BadRequest("bad").WithFields(
		Field{Key: "error", Value: "spoofed"},
		Field{Key: "code", Value: 200},
		Field{Key: "statusCode", Value: 200},
		Field{Key: "message", Value: "spoofed"},
		Field{Key: "callback", Value: func() {}},
		Field{Key: "renderer", Value: DefaultRenderer},
		Field{Key: "fn", Value: RendererFunc(func(*Error) Response { return Response{} })},
		Field{Key: "nothing", Value: nil},
		Field{Key: "kept", Value: true},
	)

	obj := e.Render().Payload.(Object)
	keys := make([]string, 0, obj.Len())
	for _, f := range obj {
		keys = append(keys, f.Key)
	}
	want := []string{"error", "code", "message", "nothing", "kept"}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	if v, _ := obj.Get("error"); v != "Bad Request" {
		t.Fatalf("error overwritten: %v", v)
	}
	if v, _ := obj.Get("code"); v != 400 {
		t.Fatalf("code overwritten: %v", v)
	}
	if v, _ := obj.Get("message"); v != "bad" {
		t.Fatalf("message overwritten: %v", v)
	}
}

func TestDefaultRenderer_NameOnlyWhenSet(t *testing.T) {
	plain := New(400, "x").Render().Payload.(Object)
	if _, ok := plain.Get("name"); ok {
		t.Fatal("unset name must not be rendered")
	}
	named := New(400, "x", WithNameOption("ValidationError")).Render().Payload.(Object)
	if v, _ := named.Get("name"); v != "ValidationError" {
		t.Fatalf("name = %v", v)
	}
}

func TestRender_Idempotent(t *testing.T) {
	errs := []*Error{
		BadRequest("x").WithField("a", []int{1, 2}),
		Unauthorized("bad", "Bearer", Attr{Name: "realm", Value: "api"}),
		Internal("db down", map[string]any{"q": 1}),
		PassThrough(302, map[string]string{"url": "/x"}, "text/plain", map[string]string{"Location": "/x"}),
	}
	for _, e := range errs {
		a, b := e.Render(), e.Render()
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("%v: renders differ:\n%+v\n%+v", e.Kind(), a, b)
		}
	}
}

func TestRender_DoesNotShareState(t *testing.T) {
	e := Unauthorized("bad", "Bearer")
	first := e.Render()
	first.Payload.(Object).Set("message", "tampered")
	first.Headers["WWW-Authenticate"] = "tampered"

	second := e.Render()
	if v, _ := second.Payload.(Object).Get("message"); v != "bad" {
		t.Fatalf("payload shared between renders: %v", v)
	}
	if second.Headers["WWW-Authenticate"] == "tampered" {
		t.Fatal("headers shared between renders")
	}
}

func TestWithRenderer_Custom(t *testing.T) {
	custom := RendererFunc(func(e *Error) Response {
		return Response{StatusCode: e.Status, Payload: e.Message, ContentType: "text/plain"}
	})
	e := Conflict("taken").WithRenderer(custom)
	if e.Kind() != KindCustom {
		t.Fatalf("Kind() = %v, want custom", e.Kind())
	}
	resp := e.Render()
	if resp.Payload != "taken" || resp.ContentType != "text/plain" {
		t.Fatalf("custom render = %+v", resp)
	}
	if e.WithRenderer(nil).Kind() != KindDefault {
		t.Fatal("nil renderer must restore the default")
	}
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		KindDefault:     "default",
		KindChallenge:   "challenge",
		KindInternal:    "internal",
		KindPassThrough: "pass_through",
		KindCustom:      "custom",
		Kind(42):        "custom",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestObject_MarshalJSONKeepsOrder(t *testing.T) {
	o := Object{}.Set("z", 1).Set("a", "two").Set("m", nil).Set("z", 3)
	b, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"z":3,"a":"two","m":null}` {
		t.Fatalf("MarshalJSON = %s", b)
	}
	if m := o.Map(); len(m) != 3 || m["a"] != "two" {
		t.Fatalf("Map() = %v", m)
	}

	empty, _ := json.Marshal(Object(nil))
	if string(empty) != `{}` {
		t.Fatalf("empty object = %s", empty)
	}
}

func TestObject_MarshalJSONError(t *testing.T) {
	o := Object{}.Set("ch", make(chan int))
	if _, err := json.Marshal(o); err == nil {
		t.Fatal("expected an error for an unsupported value")
	}
}
