package plotting

import (
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/notargets/eulerfv/model_problems/Euler1D"
)

var _ = Describe("Hub", func() {
	var (
		hub  *Hub
		srv  *httptest.Server
		url  string
		snap *Euler1D.Snapshot
	)

	dial := func() *websocket.Conn {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		Expect(err).ToNot(HaveOccurred())
		return conn
	}

	BeforeEach(func() {
		hub = NewHub()
		srv = httptest.NewServer(hub)
		url = "ws" + strings.TrimPrefix(srv.URL, "http")
		snap = &Euler1D.Snapshot{
			Step: 4,
			Time: 0.125,
			X:    []float64{0.25, 0.75},
			Rho:  []float64{1, 0.5},
			RhoU: []float64{0.5, 0.5},
			RhoE: []float64{2.5, 1.5},
			P:    []float64{0.9, 0.5},
		}
	})

	AfterEach(func() {
		srv.Close()
	})

	It("should broadcast snapshots to every client", func() {
		c1, c2 := dial(), dial()
		defer c1.Close()
		defer c2.Close()
		Eventually(hub.NumClients).Should(Equal(2))

		Expect(hub.AddSnapshot(snap)).To(Succeed())
		for _, conn := range []*websocket.Conn{c1, c2} {
			var msg Message
			Expect(conn.SetReadDeadline(time.Now().Add(5 * time.Second))).To(Succeed())
			Expect(conn.ReadJSON(&msg)).To(Succeed())
			Expect(msg.Type).To(Equal("snapshot"))
			Expect(msg.Step).To(Equal(4))
			Expect(msg.Time).To(Equal(0.125))
			Expect(msg.Rho).To(Equal([]float64{1, 0.5}))
			Expect(msg.U).To(Equal([]float64{0.5, 1}))
		}
	})

	It("should close clients when the run finishes", func() {
		conn := dial()
		defer conn.Close()
		Eventually(hub.NumClients).Should(Equal(1))

		Expect(hub.AddSnapshot(snap)).To(Succeed())
		Expect(hub.Finish()).To(Succeed())
		Expect(hub.NumClients()).To(BeZero())

		var msg Message
		Expect(conn.SetReadDeadline(time.Now().Add(5 * time.Second))).To(Succeed())
		Expect(conn.ReadJSON(&msg)).To(Succeed())
		Expect(msg.Step).To(Equal(4))
		_, _, err := conn.ReadMessage()
		Expect(websocket.IsCloseError(err, websocket.CloseNormalClosure)).To(BeTrue())
	})

	It("should forget clients that disconnect", func() {
		conn := dial()
		Eventually(hub.NumClients).Should(Equal(1))
		Expect(conn.Close()).To(Succeed())
		Eventually(hub.NumClients).Should(BeZero())
		Expect(hub.AddSnapshot(snap)).To(Succeed())
	})

	It("should turn clients away after the run finishes", func() {
		Expect(hub.Finish()).To(Succeed())
		conn := dial()
		defer conn.Close()
		Expect(conn.SetReadDeadline(time.Now().Add(5 * time.Second))).To(Succeed())
		_, _, err := conn.ReadMessage()
		Expect(websocket.IsCloseError(err, websocket.CloseNormalClosure)).To(BeTrue())
		Expect(hub.NumClients()).To(BeZero())
	})
})
