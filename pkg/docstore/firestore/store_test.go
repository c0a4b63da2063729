package firestore

import (
	"context"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	pb "cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/m04kA/SMC-AvailabilityService/pkg/docstore"
)

const projectID = "clinic-test"

// fakeFirestore хранит документы в памяти и отвечает на те RPC, которыми пользуется Store
type fakeFirestore struct {
	pb.UnimplementedFirestoreServer

	mu   sync.Mutex
	docs map[string]*pb.Document
	fail codes.Code
}

func (f *fakeFirestore) failWith(code codes.Code) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = code
}

func (f *fakeFirestore) failure() error {
	if f.fail == codes.OK {
		return nil
	}
	return status.Error(f.fail, "injected failure")
}

func (f *fakeFirestore) BatchGetDocuments(req *pb.BatchGetDocumentsRequest, stream pb.Firestore_BatchGetDocumentsServer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failure(); err != nil {
		return err
	}

	for _, name := range req.GetDocuments() {
		resp := &pb.BatchGetDocumentsResponse{ReadTime: timestamppb.Now()}
		if doc, ok := f.docs[name]; ok {
			resp.Result = &pb.BatchGetDocumentsResponse_Found{Found: doc}
		} else {
			resp.Result = &pb.BatchGetDocumentsResponse_Missing{Missing: name}
		}
		if err := stream.Send(resp); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeFirestore) RunQuery(req *pb.RunQueryRequest, stream pb.Firestore_RunQueryServer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failure(); err != nil {
		return err
	}

	prefix := req.GetParent() + "/" + req.GetStructuredQuery().GetFrom()[0].GetCollectionId() + "/"
	for name, doc := range f.docs {
		if !strings.HasPrefix(name, prefix) || strings.Contains(strings.TrimPrefix(name, prefix), "/") {
			continue
		}
		if err := stream.Send(&pb.RunQueryResponse{Document: doc, ReadTime: timestamppb.Now()}); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeFirestore) Commit(_ context.Context, req *pb.CommitRequest) (*pb.CommitResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failure(); err != nil {
		return nil, err
	}

	now := timestamppb.Now()
	results := make([]*pb.WriteResult, 0, len(req.GetWrites()))
	for _, w := range req.GetWrites() {
		switch op := w.GetOperation().(type) {
		case *pb.Write_Update:
			doc := &pb.Document{Name: op.Update.GetName(), Fields: op.Update.GetFields(), CreateTime: now, UpdateTime: now}
			if prev, ok := f.docs[doc.Name]; ok {
				doc.CreateTime = prev.CreateTime
			}
			f.docs[doc.Name] = doc
		case *pb.Write_Delete:
			delete(f.docs, op.Delete)
		}
		results = append(results, &pb.WriteResult{UpdateTime: now})
	}
	return &pb.CommitResponse{WriteResults: results, CommitTime: now}, nil
}

func newStore(t *testing.T) (*Store, *fakeFirestore) {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	fake := &fakeFirestore{docs: make(map[string]*pb.Document)}
	srv := grpc.NewServer()
	pb.RegisterFirestoreServer(srv, fake)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := firestore.NewClient(ctx, projectID, option.WithGRPCConn(conn))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return NewStore(client), fake
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	body := `{"dayName":"Lunes","isWorkDay":true,"timeRanges":[{"id":"a","start":"09:00","end":"17:00"}]}`

	require.NoError(t, store.Put(ctx, "schedule", "day-0", []byte(body)))

	doc, err := store.Get(ctx, "schedule", "day-0")
	require.NoError(t, err)
	assert.Equal(t, "day-0", doc.Key)
	assert.JSONEq(t, body, string(doc.Body))
}

func TestStore_PutReplaces(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	require.NoError(t, store.Put(ctx, "users", "u1", []byte(`{"email":"a@example.com","isAdmin":true}`)))
	require.NoError(t, store.Put(ctx, "users", "u1", []byte(`{"email":"b@example.com"}`)))

	doc, err := store.Get(ctx, "users", "u1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"b@example.com"}`, string(doc.Body))
}

func TestStore_GetMissing(t *testing.T) {
	store, _ := newStore(t)

	doc, err := store.Get(context.Background(), "schedule", "day-9")

	assert.ErrorIs(t, err, docstore.ErrNotFound)
	assert.Nil(t, doc)
}

func TestStore_ListIsScopedToCollection(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	require.NoError(t, store.Put(ctx, "schedule", "day-0", []byte(`{"dayName":"Lunes"}`)))
	require.NoError(t, store.Put(ctx, "schedule", "day-1", []byte(`{"dayName":"Martes"}`)))
	require.NoError(t, store.Put(ctx, "users", "u1", []byte(`{"email":"a@example.com"}`)))

	docs, err := store.List(ctx, "schedule")
	require.NoError(t, err)

	keys := make([]string, 0, len(docs))
	for _, d := range docs {
		keys = append(keys, d.Key)
	}
	assert.ElementsMatch(t, []string{"day-0", "day-1"}, keys)
}

func TestStore_ListEmpty(t *testing.T) {
	store, _ := newStore(t)

	docs, err := store.List(context.Background(), "schedule")

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	require.NoError(t, store.Put(ctx, "schedule", "day-0", []byte(`{}`)))

	require.NoError(t, store.Delete(ctx, "schedule", "day-0"))
	require.NoError(t, store.Delete(ctx, "schedule", "day-0"))

	_, err := store.Get(ctx, "schedule", "day-0")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestStore_PutRejectsNonObjectBody(t *testing.T) {
	store, fake := newStore(t)

	err := store.Put(context.Background(), "schedule", "day-0", []byte(`[1,2]`))

	assert.ErrorIs(t, err, ErrEncode)
	assert.Empty(t, fake.docs)
}

func TestStore_BackendErrors(t *testing.T) {
	ctx := context.Background()
	store, fake := newStore(t)
	fake.failWith(codes.PermissionDenied)

	_, err := store.List(ctx, "schedule")
	assert.ErrorIs(t, err, ErrQuery)

	_, err = store.Get(ctx, "schedule", "day-0")
	assert.ErrorIs(t, err, ErrQuery)

	err = store.Put(ctx, "schedule", "day-0", []byte(`{}`))
	assert.ErrorIs(t, err, ErrQuery)

	err = store.Delete(ctx, "schedule", "day-0")
	assert.ErrorIs(t, err, ErrQuery)
}
