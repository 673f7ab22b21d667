package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/goliatone/go-epiform/pkg/model"
	"github.com/goliatone/go-epiform/pkg/printsink"
	"github.com/goliatone/go-epiform/pkg/render"
)

type stubSurface struct {
	written   []byte
	printed   int
	discarded int
	writeErr  error
}

func (s *stubSurface) Write(markup []byte) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.written = append([]byte(nil), markup...)
	return nil
}

func (s *stubSurface) Print(context.Context) error {
	s.printed++
	return nil
}

func (s *stubSurface) Location() string { return "stub://surface" }

func (s *stubSurface) Discard() error {
	s.discarded++
	return nil
}

type stubOpener struct {
	surface  *stubSurface
	err      error
	viewport printsink.Viewport
	calls    int
}

func (o *stubOpener) Open(_ context.Context, viewport printsink.Viewport) (printsink.Surface, error) {
	o.calls++
	o.viewport = viewport
	if o.err != nil {
		return nil, o.err
	}
	return o.surface, nil
}

type stubRenderer struct {
	calls int
	opts  render.RenderOptions
	err   error
}

func (r *stubRenderer) Name() string        { return "document" }
func (r *stubRenderer) ContentType() string { return "text/html" }
func (r *stubRenderer) Render(_ context.Context, snap model.Snapshot, opts render.RenderOptions) ([]byte, error) {
	r.calls++
	r.opts = opts
	if r.err != nil {
		return nil, r.err
	}
	return []byte(fmt.Sprintf("rows=%d name=%s", len(snap.Rows), snap.Employee.Colaborador)), nil
}

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(_ context.Context, message string) error {
	n.messages = append(n.messages, message)
	return nil
}

func snapshot() model.Snapshot {
	return model.Snapshot{
		Employee: model.EmployeeInfo{Colaborador: "Ana"},
		Rows:     []model.EquipmentRow{{ID: "1"}, {ID: "2"}},
	}
}

func TestGenerate_WritesAndPrints(t *testing.T) {
	surface := &stubSurface{}
	opener := &stubOpener{surface: surface}
	renderer := &stubRenderer{}
	notifier := &recordingNotifier{}

	gen, err := New(opener, renderer,
		WithNotifier(notifier),
		WithRenderOptions(render.RenderOptions{Locale: "de-DE"}),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err := gen.Generate(context.Background(), snapshot()); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if string(surface.written) != "rows=2 name=Ana" {
		t.Fatalf("unexpected markup %q", surface.written)
	}
	if surface.printed != 1 {
		t.Fatalf("expected one print, got %d", surface.printed)
	}
	if opener.viewport != (printsink.Viewport{Width: 1000, Height: 800}) {
		t.Fatalf("unexpected viewport %+v", opener.viewport)
	}
	if renderer.opts.Locale != "de-DE" {
		t.Fatalf("render options not forwarded")
	}
	if len(notifier.messages) != 0 {
		t.Fatalf("no notice expected on success, got %v", notifier.messages)
	}
}

func TestGenerate_SurfaceUnavailable(t *testing.T) {
	opener := &stubOpener{err: fmt.Errorf("%w: no browser", printsink.ErrSurfaceUnavailable)}
	renderer := &stubRenderer{}
	notifier := &recordingNotifier{}

	gen, err := New(opener, renderer, WithNotifier(notifier))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	snap := snapshot()
	err = gen.Generate(context.Background(), snap)
	if !errors.Is(err, printsink.ErrSurfaceUnavailable) {
		t.Fatalf("expected ErrSurfaceUnavailable, got %v", err)
	}
	if len(notifier.messages) != 1 || notifier.messages[0] != FailureNotice {
		t.Fatalf("expected failure notice, got %v", notifier.messages)
	}
	if !strings.Contains(FailureNotice, "bloqueador de pop-ups") {
		t.Fatalf("notice must mention the pop-up blocker")
	}
	if renderer.calls != 0 {
		t.Fatalf("nothing should be rendered without a surface")
	}
	if len(snap.Rows) != 2 || snap.Employee.Colaborador != "Ana" {
		t.Fatalf("snapshot changed")
	}

	// retrying once a surface is available succeeds
	surface := &stubSurface{}
	opener.err = nil
	opener.surface = surface
	if err := gen.Generate(context.Background(), snap); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if surface.printed != 1 {
		t.Fatalf("expected print after retry")
	}
}

func TestGenerate_OtherOpenErrorsAreNotNotified(t *testing.T) {
	opener := &stubOpener{err: context.Canceled}
	notifier := &recordingNotifier{}

	gen, err := New(opener, &stubRenderer{}, WithNotifier(notifier))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := gen.Generate(context.Background(), snapshot()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(notifier.messages) != 0 {
		t.Fatalf("unexpected notice %v", notifier.messages)
	}
}

func TestGenerate_RenderError(t *testing.T) {
	surface := &stubSurface{}
	gen, err := New(&stubOpener{surface: surface}, &stubRenderer{err: errors.New("boom")})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := gen.Generate(context.Background(), snapshot()); err == nil {
		t.Fatalf("expected render error")
	}
	if surface.printed != 0 || surface.written != nil {
		t.Fatalf("surface must stay untouched on render failure")
	}
	if surface.discarded != 1 {
		t.Fatalf("surface should be discarded after a render failure")
	}
}

func TestGenerate_WriteErrorDiscardsSurface(t *testing.T) {
	surface := &stubSurface{writeErr: errors.New("disk full")}
	gen, err := New(&stubOpener{surface: surface}, &stubRenderer{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := gen.Generate(context.Background(), snapshot()); err == nil {
		t.Fatalf("expected write error")
	}
	if surface.discarded != 1 || surface.printed != 0 {
		t.Fatalf("expected discard without print, got discarded=%d printed=%d", surface.discarded, surface.printed)
	}
}

func TestGenerate_RenderErrorRemovesTempFile(t *testing.T) {
	dir := t.TempDir()
	opener := printsink.NewBrowserOpener(
		printsink.WithCommand("browser {file}"),
		printsink.WithTempDir(dir),
		printsink.WithLookPath(func(name string) (string, error) { return "/usr/bin/" + name, nil }),
		printsink.WithStarter(func(string, ...string) error { return nil }),
	)
	gen, err := New(opener, &stubRenderer{err: errors.New("boom")})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := gen.Generate(context.Background(), snapshot()); err == nil {
		t.Fatalf("expected render error")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read temp dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no leftover document files, found %d", len(entries))
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(nil, &stubRenderer{}); err == nil {
		t.Fatalf("expected opener error")
	}
	if _, err := New(&stubOpener{}, nil); err == nil {
		t.Fatalf("expected renderer error")
	}

	gen, err := New(&stubOpener{}, &stubRenderer{}, WithViewport(printsink.Viewport{Width: 0, Height: 10}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if gen.viewport != printsink.DefaultViewport {
		t.Fatalf("invalid viewport should be ignored")
	}
}

func TestNotifierFunc(t *testing.T) {
	var got string
	n := NotifierFunc(func(_ context.Context, message string) error {
		got = message
		return nil
	})
	if err := n.Notify(context.Background(), "oi"); err != nil || got != "oi" {
		t.Fatalf("notifier func not invoked")
	}
}
