package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/amaumene/whattowatch/internal/domain"
	"github.com/amaumene/whattowatch/internal/store"
)

var errBackend = errors.New("backend unavailable")

type call struct {
	method string
	path   string
	body   any
	file   *domain.FormFile
}

type reply struct {
	status  int
	payload any
	err     error
}

// fakeRequester answers calls from a route table and records them.
type fakeRequester struct {
	mu      sync.Mutex
	replies map[string]reply
	calls   []call
	onCall  func(call)
}

func newFakeRequester() *fakeRequester {
	return &fakeRequester{replies: make(map[string]reply)}
}

func (f *fakeRequester) on(method, path string, r reply) *fakeRequester {
	f.replies[method+" "+path] = r
	return f
}

func (f *fakeRequester) paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	paths := make([]string, len(f.calls))
	for i, c := range f.calls {
		paths[i] = c.method + " " + c.path
	}
	return paths
}

func (f *fakeRequester) Get(ctx context.Context, path string, out any) (int, error) {
	return f.do(call{method: http.MethodGet, path: path}, out)
}

func (f *fakeRequester) Post(ctx context.Context, path string, body, out any) (int, error) {
	return f.do(call{method: http.MethodPost, path: path, body: body}, out)
}

func (f *fakeRequester) Patch(ctx context.Context, path string, body, out any) (int, error) {
	return f.do(call{method: http.MethodPatch, path: path, body: body}, out)
}

func (f *fakeRequester) Delete(ctx context.Context, path string, out any) (int, error) {
	return f.do(call{method: http.MethodDelete, path: path}, out)
}

func (f *fakeRequester) Upload(ctx context.Context, path string, file *domain.FormFile, out any) (int, error) {
	return f.do(call{method: http.MethodPost, path: path, file: file}, out)
}

func (f *fakeRequester) do(c call, out any) (int, error) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	r, ok := f.replies[c.method+" "+c.path]
	onCall := f.onCall
	f.mu.Unlock()

	if onCall != nil {
		onCall(c)
	}
	if !ok {
		return http.StatusNotFound, fmt.Errorf("%s %s: unexpected status code: 404", c.method, c.path)
	}
	if r.err != nil {
		return r.status, r.err
	}
	if out != nil && r.payload != nil {
		data, err := json.Marshal(r.payload)
		if err != nil {
			return 0, err
		}
		if err := json.Unmarshal(data, out); err != nil {
			return 0, err
		}
	}
	return r.status, nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *fakeNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

type fakeTokenStore struct {
	token   domain.Token
	saveErr error
	dropErr error
}

func (s *fakeTokenStore) Token(ctx context.Context) (domain.Token, error) {
	if s.token == "" {
		return "", domain.ErrTokenNotFound
	}
	return s.token, nil
}

func (s *fakeTokenStore) SaveToken(ctx context.Context, token domain.Token) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.token = token
	return nil
}

func (s *fakeTokenStore) DropToken(ctx context.Context) error {
	if s.dropErr != nil {
		return s.dropErr
	}
	s.token = ""
	return nil
}

// recordActions subscribes to st and returns the action types seen so far.
func recordActions(st *store.Store) func() []string {
	var (
		mu    sync.Mutex
		types []string
	)
	st.Subscribe(func(action store.Action, _ store.State) {
		mu.Lock()
		defer mu.Unlock()
		types = append(types, action.Type())
	})
	return func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), types...)
	}
}
