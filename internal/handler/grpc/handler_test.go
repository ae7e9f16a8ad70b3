package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/MKhiriev/go-pass-gen/internal/app"
	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/service"
	"github.com/MKhiriev/go-pass-gen/internal/utils"
	"github.com/MKhiriev/go-pass-gen/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type stubAppInfoService struct{}

func (stubAppInfoService) GetAppName(context.Context) string    { return "go-pass-gen" }
func (stubAppInfoService) GetAppVersion(context.Context) string { return "1.2.3" }

type stubGeneratorService struct {
	result models.DerivationResult
	err    error
	panics bool
}

func (s *stubGeneratorService) Generate(_ context.Context, _ models.DerivationRequest) (models.DerivationResult, error) {
	if s.panics {
		panic("boom")
	}
	return s.result, s.err
}

// startServer serves h over an in-memory listener and returns a connected
// client.
func startServer(t *testing.T, h *Handler) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(h.ServerOptions()...)
	h.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(utils.JSONCodecName)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func newRealHandler(t *testing.T) *Handler {
	t.Helper()
	cfg := config.StructuredConfig{App: config.App{Name: "go-pass-gen", Version: "1.2.3"}}
	services, err := service.NewServices(crypto.NewDeriver(), cfg, nil, logger.Nop())
	require.NoError(t, err)
	return NewHandler(services, logger.Nop())
}

func newStubHandler(gen service.GeneratorService) *Handler {
	return NewHandler(&service.Services{
		GeneratorService: gen,
		AppInfoService:   stubAppInfoService{},
	}, logger.Nop())
}

func TestGenerate_KnownVectors(t *testing.T) {
	conn := startServer(t, newRealHandler(t))

	tests := []struct {
		pepper, word, want string
	}{
		{pepper: "test", word: "test", want: "#@1haoUMqwgXQCW5"},
		{pepper: "world1", word: "hello", want: "MONAu@Yy@wcs15sQ"},
		{pepper: "wörld", word: "héllo", want: "xVbLYfoZV68O#oib"},
		{pepper: "c", word: "a/b", want: "1fFwI2Rw#qnt2Kui"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.word, tt.pepper), func(t *testing.T) {
			var resp models.DerivationResult
			err := conn.Invoke(context.Background(), GenerateMethod,
				&models.DerivationRequest{Pepper: tt.pepper, Word: tt.word}, &resp)

			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Password)
			assert.Equal(t, "c3RhdGljLXNhbHQtZm9yLWRldGVybWluaXN0aWMtcmVzdWx0cw==", resp.Salt)
			assert.Equal(t, 100000, resp.Iterations)
			assert.Equal(t, "SHA-256", resp.Hash)
		})
	}
}

func TestGenerate_ErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode codes.Code
		wantMsg  string
	}{
		{
			name:     "invalid input",
			err:      fmt.Errorf("generate: %w", crypto.ErrInvalidInput),
			wantCode: codes.InvalidArgument,
			wantMsg:  app.MsgBodyFieldsRequired,
		},
		{
			name:     "not admitted",
			err:      service.ErrDerivationNotAdmitted,
			wantCode: codes.ResourceExhausted,
			wantMsg:  app.MsgDerivationNotAdmitted,
		},
		{
			name:     "primitive unavailable",
			err:      crypto.ErrPrimitiveUnavailable,
			wantCode: codes.Internal,
			wantMsg:  app.MsgDerivationFailed,
		},
		{
			name:     "unknown error text is hidden",
			err:      errors.New("secret internal detail"),
			wantCode: codes.Internal,
			wantMsg:  app.MsgDerivationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := startServer(t, newStubHandler(&stubGeneratorService{err: tt.err}))

			var resp models.DerivationResult
			err := conn.Invoke(context.Background(), GenerateMethod,
				&models.DerivationRequest{Pepper: "p", Word: "w"}, &resp)

			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}

func TestGenerate_EmptyFieldsRejected(t *testing.T) {
	conn := startServer(t, newRealHandler(t))

	var resp models.DerivationResult
	err := conn.Invoke(context.Background(), GenerateMethod,
		&models.DerivationRequest{Pepper: "", Word: "hello"}, &resp)

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGenerate_PanicIsRecovered(t *testing.T) {
	conn := startServer(t, newStubHandler(&stubGeneratorService{panics: true}))

	var resp models.DerivationResult
	err := conn.Invoke(context.Background(), GenerateMethod,
		&models.DerivationRequest{Pepper: "p", Word: "w"}, &resp)

	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestTraceIDInterceptor(t *testing.T) {
	conn := startServer(t, newStubHandler(&stubGeneratorService{
		result: models.DerivationResult{Password: "AAAAAAAAAAAAAAAA"},
	}))

	t.Run("incoming trace ID is echoed", func(t *testing.T) {
		ctx := metadata.AppendToOutgoingContext(context.Background(), TraceIDMetadataKey, "grpc-trace")

		var header metadata.MD
		var resp models.DerivationResult
		err := conn.Invoke(ctx, GenerateMethod, &models.DerivationRequest{Pepper: "p", Word: "w"}, &resp, grpc.Header(&header))

		require.NoError(t, err)
		assert.Equal(t, []string{"grpc-trace"}, header.Get(TraceIDMetadataKey))
	})

	t.Run("trace ID is generated when absent", func(t *testing.T) {
		var header metadata.MD
		var resp models.DerivationResult
		err := conn.Invoke(context.Background(), GenerateMethod, &models.DerivationRequest{Pepper: "p", Word: "w"}, &resp, grpc.Header(&header))

		require.NoError(t, err)
		require.Len(t, header.Get(TraceIDMetadataKey), 1)
		assert.NotEmpty(t, header.Get(TraceIDMetadataKey)[0])
	})
}

func TestGenerate_NilRequest(t *testing.T) {
	h := newStubHandler(&stubGeneratorService{})

	_, err := h.Generate(context.Background(), nil)

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
