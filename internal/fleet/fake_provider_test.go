package fleet

import (
	"context"
	"fmt"
)

type createCall struct {
	Name string
	Spec InstanceSpec
}

// fakeProvider records mutations and serves a fixed listing.
type fakeProvider struct {
	servers []Instance
	listErr error

	// failCreateAt / failDeleteAt make the n-th call (1-based) fail.
	failCreateAt int
	failDeleteAt int

	creates []createCall
	deletes []int64
	nextID  int64
}

func (f *fakeProvider) ListInstances(_ context.Context) ([]Instance, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]Instance(nil), f.servers...), nil
}

func (f *fakeProvider) CreateInstance(_ context.Context, spec InstanceSpec, name string) (Instance, error) {
	f.creates = append(f.creates, createCall{Name: name, Spec: spec})
	if f.failCreateAt == len(f.creates) {
		return Instance{}, fmt.Errorf("quota exceeded")
	}
	f.nextID++
	return Instance{ID: 1000 + f.nextID, Name: name, Status: StatusInitializing, Labels: spec.Labels}, nil
}

func (f *fakeProvider) DeleteInstance(_ context.Context, id int64) error {
	f.deletes = append(f.deletes, id)
	if f.failDeleteAt == len(f.deletes) {
		return fmt.Errorf("server locked")
	}
	return nil
}

func (f *fakeProvider) mutations() int {
	return len(f.creates) + len(f.deletes)
}

// fleetOf returns n managed servers labelled app=game followed by an unmanaged one.
func fleetOf(n int) []Instance {
	servers := make([]Instance, 0, n+1)
	for i := 1; i <= n; i++ {
		servers = append(servers, Instance{
			ID:     int64(i),
			Name:   fmt.Sprintf("game-%d", i),
			IPv4:   fmt.Sprintf("203.0.113.%d", i),
			Status: StatusRunning,
			Labels: map[string]string{"app": "game", "extra": "x"},
		})
	}
	return append(servers, Instance{ID: 99, Name: "database", Status: StatusRunning, Labels: map[string]string{"app": "db"}})
}

type stubConfirmer struct {
	err   error
	calls int
}

func (s *stubConfirmer) Confirm() error {
	s.calls++
	return s.err
}
