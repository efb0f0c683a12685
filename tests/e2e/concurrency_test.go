//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"

	"room-stay-engine/internal/domain/actor"
	"room-stay-engine/internal/handler/dto/response"
	"room-stay-engine/internal/usecase/queries"
	"room-stay-engine/tests/common/dbtest"
	"room-stay-engine/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ConcurrencyTestSuite struct {
	SharedSuite
}

func TestConcurrencyTestSuite(t *testing.T) {
	suite.Run(t, new(ConcurrencyTestSuite))
}

type result struct {
	code int
	body []byte
}

// fire sends every request at once and collects the answers.
// Requests are built up front so no assertion runs off the test goroutine.
func (s *ConcurrencyTestSuite) fire(reqs []*http.Request) []result {
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		out   = make([]result, len(reqs))
	)
	for i, req := range reqs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			w := nethttptest.NewRecorder()
			s.Router.ServeHTTP(w, req)
			out[i] = result{code: w.Code, body: w.Body.Bytes()}
		}()
	}
	close(start)
	wg.Wait()
	return out
}

func (s *ConcurrencyTestSuite) request(method, path string, body any, token string) *http.Request {
	raw, err := json.Marshal(body)
	require.NoError(s.T(), err)
	req := nethttptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func countCodes(rs []result) map[int]int {
	codes := map[int]int{}
	for _, r := range rs {
		codes[r.code]++
	}
	return codes
}

func (s *ConcurrencyTestSuite) TestBookingStormAdmitsOneWinner() {
	t := s.T()
	const clients = 12
	today := s.Policy.Today()
	roomID := dbtest.CreateTestRoom(t, s.DB, s.PropertyID, "101", 2000)

	reqs := make([]*http.Request, 0, clients)
	for range clients {
		reqs = append(reqs, s.request(http.MethodPost, "/api/bookings", map[string]any{
			"room":        "101",
			"guest_name":  "Storm Guest",
			"check_in":    today.AddDays(3).String(),
			"check_out":   today.AddDays(6).String(),
			"guest_count": 1,
		}, s.Token(actor.RoleOperator)))
	}

	codes := countCodes(s.fire(reqs))
	s.Equal(1, codes[http.StatusCreated], "codes: %v", codes)
	// losers either see the winner or give up after retrying
	s.Equal(clients-1, codes[http.StatusConflict]+codes[http.StatusServiceUnavailable], "codes: %v", codes)

	s.Equal(3, dbtest.CountNightClaims(t, s.DB, roomID))
	s.Equal(1, dbtest.CountRows(t, s.DB, "bookings", "room_id = $1 AND status = 'confirmed'", roomID))
}

func (s *ConcurrencyTestSuite) TestOverlappingStaggeredRanges() {
	t := s.T()
	today := s.Policy.Today()
	roomID := dbtest.CreateTestRoom(t, s.DB, s.PropertyID, "102", 2000)

	// every pair of these overlaps on at least one night
	ranges := [][2]int{{1, 4}, {2, 5}, {3, 6}, {3, 4}}
	reqs := make([]*http.Request, 0, len(ranges))
	for _, r := range ranges {
		reqs = append(reqs, s.request(http.MethodPost, "/api/bookings", map[string]any{
			"room":        roomID.String(),
			"guest_name":  "Overlap Guest",
			"check_in":    today.AddDays(r[0]).String(),
			"check_out":   today.AddDays(r[1]).String(),
			"guest_count": 1,
		}, s.Token(actor.RoleOperator)))
	}

	results := s.fire(reqs)
	codes := countCodes(results)
	require.Equal(t, 1, codes[http.StatusCreated], "codes: %v", codes)

	for _, r := range results {
		if r.code != http.StatusCreated {
			continue
		}
		var b response.BookingResponse
		require.NoError(t, json.Unmarshal(r.body, &b))
		s.Equal(b.Nights, dbtest.CountNightClaims(t, s.DB, roomID))
	}
}

func (s *ConcurrencyTestSuite) TestConcurrentLinkOrder() {
	t := s.T()
	const stays = 4
	today := s.Policy.Today()

	stayIDs := make([]uuid.UUID, 0, stays)
	for i := range stays {
		number := string(rune('A'+i)) + "01"
		dbtest.CreateTestRoom(t, s.DB, s.PropertyID, number, 1500)
		w := s.Do(http.MethodPost, "/api/stays", map[string]any{
			"room":        number,
			"guest_name":  "Guest " + number,
			"check_in":    today.String(),
			"check_out":   today.AddDays(1).String(),
			"guest_count": 1,
		}, actor.RoleOperator)
		var st queries.StayView
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &st)
		stayIDs = append(stayIDs, st.ID)
	}

	orderID := dbtest.CreateTestOrder(t, s.DB, s.PropertyID, 780)
	reqs := make([]*http.Request, 0, 2*stays)
	for _, id := range stayIDs {
		// two attempts per stay: a double tap on the same stay must not double the ledger either
		for range 2 {
			reqs = append(reqs, s.request(http.MethodPost, "/api/stays/"+id.String()+"/orders", map[string]any{
				"order_id": orderID.String(),
			}, s.Token(actor.RoleOperator)))
		}
	}

	results := s.fire(reqs)
	codes := countCodes(results)
	s.Equal(1, codes[http.StatusOK], "codes: %v", codes)
	s.Equal(len(reqs)-1, codes[http.StatusConflict]+codes[http.StatusServiceUnavailable], "codes: %v", codes)

	state := dbtest.GetOrderState(t, s.DB, orderID)
	require.NotNil(t, state.LinkedTo)

	// exactly one ledger in the property carries the order
	carriers := 0
	for _, id := range stayIDs {
		w := s.Do(http.MethodGet, "/api/stays/"+id.String(), nil, actor.RoleViewer)
		var st queries.StayView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &st)
		for _, e := range st.Ledger {
			if e.OrderID == orderID {
				carriers++
				s.Equal(*state.LinkedTo, st.ID)
				s.Equal(int64(780), e.Amount)
			}
		}
	}
	s.Equal(1, carriers)
}

func (s *ConcurrencyTestSuite) TestIdempotentReplay() {
	t := s.T()
	today := s.Policy.Today()
	dbtest.CreateTestRoom(t, s.DB, s.PropertyID, "201", 1800)

	token := s.JWT.GenerateToken(t, uuid.New(), actor.RoleOperator, s.PropertyID)
	key := uuid.NewString()
	body := map[string]any{
		"room":        "201",
		"guest_name":  "Replay Guest",
		"check_in":    today.AddDays(2).String(),
		"check_out":   today.AddDays(4).String(),
		"guest_count": 1,
	}
	headers := map[string]string{"Idempotency-Key": key}

	first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/bookings", body, token, headers)
	var created response.BookingResponse
	httptest.AssertSuccessResponse(t, first, http.StatusCreated, &created)
	s.False(created.Replayed)

	second := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/bookings", body, token, headers)
	var replayed response.BookingResponse
	httptest.AssertSuccessResponse(t, second, http.StatusOK, &replayed)
	s.True(replayed.Replayed)
	s.Equal(created.ID, replayed.ID)

	s.Equal(1, dbtest.CountRows(t, s.DB, "bookings", ""))

	// the same key with a different body is a client error
	body["guest_name"] = "Someone Else"
	third := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/bookings", body, token, headers)
	s.Equal(http.StatusUnprocessableEntity, third.Code, third.Body.String())
}
