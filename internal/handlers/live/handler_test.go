package live_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	configuratorv1alpha1 "github.com/KirkDiggler/general-configurator/internal/api/configurator/v1alpha1"
	"github.com/KirkDiggler/general-configurator/internal/engine"
	"github.com/KirkDiggler/general-configurator/internal/errors"
	configuratorhandler "github.com/KirkDiggler/general-configurator/internal/handlers/configurator/v1alpha1"
	"github.com/KirkDiggler/general-configurator/internal/handlers/live"
	"github.com/KirkDiggler/general-configurator/internal/orchestrators/configurator"
	"github.com/KirkDiggler/general-configurator/internal/pkg/idgen"
	"github.com/KirkDiggler/general-configurator/internal/repositories/builds"
	"github.com/KirkDiggler/general-configurator/internal/testutils"
)

type LiveTestSuite struct {
	suite.Suite
	api       *configuratorhandler.Handler
	server    *httptest.Server
	sessionID string
}

func TestLiveTestSuite(t *testing.T) {
	suite.Run(t, new(LiveTestSuite))
}

func (s *LiveTestSuite) SetupTest() {
	eng, err := engine.New(nil)
	s.Require().NoError(err)

	svc, err := configurator.NewOrchestrator(&configurator.Config{
		Catalog:     testutils.CreateTestCatalog(s.T()),
		Engine:      eng,
		BuildRepo:   builds.NewInMemory(),
		IDGenerator: idgen.NewSequential("id"),
	})
	s.Require().NoError(err)

	s.api, err = configuratorhandler.NewHandler(&configuratorhandler.HandlerConfig{ConfiguratorService: svc})
	s.Require().NoError(err)

	created, err := s.api.CreateSession(context.Background(), &configuratorv1alpha1.CreateSessionRequest{OwnerId: testutils.TestOwnerID})
	s.Require().NoError(err)
	s.sessionID = created.Session.Id

	handler, err := live.NewHandler(&live.HandlerConfig{Service: s.api})
	s.Require().NoError(err)
	s.server = httptest.NewServer(handler)
}

func (s *LiveTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *LiveTestSuite) dial(sessionID string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/?session=" + sessionID
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if resp != nil {
		_ = resp.Body.Close()
	}
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })
	return conn
}

func (s *LiveTestSuite) read(conn *websocket.Conn) *live.ServerMessage {
	var msg live.ServerMessage
	s.Require().NoError(conn.ReadJSON(&msg))
	return &msg
}

func (s *LiveTestSuite) TestNewHandlerRequiresService() {
	_, err := live.NewHandler(&live.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *LiveTestSuite) TestInitialStateAndEdits() {
	conn := s.dial(s.sessionID)

	initial := s.read(conn)
	s.Equal(live.TypeState, initial.Type)
	s.Equal(s.sessionID, initial.Session.Id)
	s.Equal(0.0, initial.Stats.Buffs["groundAttack"])

	s.Require().NoError(conn.WriteJSON(&live.ClientMessage{Type: live.TypeEquip, Slot: "weapon", Item: testutils.AresBow, Stars: 3}))
	equipped := s.read(conn)
	s.Equal(live.TypeState, equipped.Type)
	s.Equal(13.0, equipped.Stats.Buffs["groundAttack"])

	s.Require().NoError(conn.WriteJSON(&live.ClientMessage{Type: live.TypeView, Starring: "max"}))
	maxed := s.read(conn)
	s.Equal(15.0, maxed.Stats.Buffs["groundAttack"])

	s.Require().NoError(conn.WriteJSON(&live.ClientMessage{Type: live.TypeReset}))
	reset := s.read(conn)
	s.Empty(reset.Session.Slots)
}

func (s *LiveTestSuite) TestErrorsKeepTheConnection() {
	conn := s.dial(s.sessionID)
	s.read(conn)

	s.Require().NoError(conn.WriteJSON(&live.ClientMessage{Type: live.TypeEquip, Slot: "weapon", Item: "Wooden Sword"}))
	failed := s.read(conn)
	s.Equal(live.TypeError, failed.Type)
	s.Equal("NotFound", failed.Code)

	s.Require().NoError(conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	malformed := s.read(conn)
	s.Equal("InvalidArgument", malformed.Code)

	s.Require().NoError(conn.WriteJSON(&live.ClientMessage{Type: "dance"}))
	unknown := s.read(conn)
	s.Equal("InvalidArgument", unknown.Code)

	s.Require().NoError(conn.WriteJSON(&live.ClientMessage{Type: live.TypeEquip, Slot: "weapon", Item: testutils.AresBow}))
	s.Equal(live.TypeState, s.read(conn).Type)
}

func (s *LiveTestSuite) TestOversizedMessageClosesTheConnection() {
	conn := s.dial(s.sessionID)
	s.Equal(live.TypeState, s.read(conn).Type)

	s.Require().NoError(conn.WriteJSON(live.ClientMessage{
		Type:     live.TypeView,
		Scenario: strings.Repeat("x", 8192),
	}))

	var msg live.ServerMessage
	err := conn.ReadJSON(&msg)
	s.Require().Error(err)
	s.True(websocket.IsCloseError(err, websocket.CloseMessageTooBig), err.Error())
}

func (s *LiveTestSuite) TestUnknownSession() {
	resp, err := http.Get(s.server.URL + "/?session=missing")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	s.Equal(http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(s.server.URL + "/")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}
