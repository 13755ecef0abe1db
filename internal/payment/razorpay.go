package payment

import (
	"context"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"homestay-client/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const checkoutScriptURL = "https://checkout.razorpay.com/v1/checkout.js"

// razorpayGateway presents the hosted Razorpay checkout through a
// loopback page: a local server renders the checkout, the hosted
// widget collects the payment, and the page posts the result triple
// back to the loopback callback.
type razorpayGateway struct {
	keyID        string
	addr         string
	waitBudget   time.Duration
	pollInterval time.Duration
	http         *http.Client
	log          *zap.Logger
}

func NewRazorpayGateway(config *utils.Config, log *zap.Logger) Gateway {
	return &razorpayGateway{
		keyID:        config.Payment.KeyID,
		addr:         net.JoinHostPort("127.0.0.1", config.Payment.CallbackPort),
		waitBudget:   time.Duration(config.Payment.ScriptWaitSecs) * time.Second,
		pollInterval: time.Duration(config.Payment.PollIntervalMS) * time.Millisecond,
		http:         &http.Client{Timeout: 10 * time.Second},
		log:          log.With(zap.String("component", "razorpay")),
	}
}

// Ready polls the hosted checkout script until it answers or the wait
// budget runs out. A checkout opened before the script is reachable
// would silently present a dead page.
func (g *razorpayGateway) Ready(ctx context.Context) error {
	deadline := time.Now().Add(g.waitBudget)
	ticker := time.NewTicker(g.pollInterval)
	defer ticker.Stop()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, checkoutScriptURL, nil)
		if err != nil {
			return fmt.Errorf("build probe request: %w", err)
		}

		resp, err := g.http.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode < http.StatusInternalServerError {
				return nil
			}
		}

		if time.Now().After(deadline) {
			g.log.Warn("Checkout script unreachable", zap.Duration("budget", g.waitBudget))
			return fmt.Errorf("payment gateway failed to load, please try again")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Open serves the checkout page on the loopback address and blocks
// until the customer finishes or dismisses, or ctx expires.
func (g *razorpayGateway) Open(ctx context.Context, order *Order) (*Outcome, error) {
	outcomes := make(chan *Outcome, 1)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := checkoutPage.Execute(w, map[string]any{
			"KeyID":       g.keyID,
			"OrderID":     order.OrderID,
			"AmountPaise": int64(order.Amount * 100),
			"Currency":    order.Currency,
			"BookingRef":  order.BookingRef,
			"Description": order.Description,
			"Name":        order.Prefill.Name,
			"Email":       order.Prefill.Email,
			"Contact":     order.Prefill.Contact,
		}); err != nil {
			g.log.Error("Failed to render checkout page", zap.Error(err))
		}
	})

	router.Post("/callback", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		result := &Result{
			OrderID:   r.PostFormValue("razorpay_order_id"),
			PaymentID: r.PostFormValue("razorpay_payment_id"),
			Signature: r.PostFormValue("razorpay_signature"),
		}
		if result.OrderID == "" || result.PaymentID == "" || result.Signature == "" {
			http.Error(w, "incomplete payment response", http.StatusBadRequest)
			return
		}
		w.Write([]byte("Payment received. You can close this window."))
		select {
		case outcomes <- &Outcome{Result: result}:
		default:
		}
	})

	router.Post("/dismiss", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
		select {
		case outcomes <- &Outcome{Dismissed: true}:
		default:
		}
	})

	router.Post("/failed", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		reason := r.PostFormValue("description")
		if reason == "" {
			reason = "payment failed"
		}
		w.WriteHeader(http.StatusNoContent)
		select {
		case outcomes <- &Outcome{Err: fmt.Errorf("%s", reason)}:
		default:
		}
	})

	listener, err := net.Listen("tcp", g.addr)
	if err != nil {
		return nil, fmt.Errorf("start checkout listener: %w", err)
	}

	server := &http.Server{Handler: router}
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			g.log.Error("Checkout server stopped", zap.Error(err))
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	g.log.Info("Checkout ready",
		zap.String("url", fmt.Sprintf("http://%s/", g.addr)),
		zap.String("order_id", order.OrderID),
		zap.Float64("amount", order.Amount))

	select {
	case outcome := <-outcomes:
		return outcome, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

var checkoutPage = template.Must(template.New("checkout").Parse(`<!DOCTYPE html>
<html>
<head><title>Complete your payment</title></head>
<body>
<script src="` + checkoutScriptURL + `"></script>
<script>
var options = {
  key: {{.KeyID}},
  amount: {{.AmountPaise}},
  currency: {{.Currency}},
  name: "Homestay Reservation",
  description: {{.Description}},
  order_id: {{.OrderID}},
  prefill: { name: {{.Name}}, email: {{.Email}}, contact: {{.Contact}} },
  notes: { booking_ref: {{.BookingRef}} },
  handler: function (response) {
    var body = new URLSearchParams();
    body.append("razorpay_order_id", response.razorpay_order_id);
    body.append("razorpay_payment_id", response.razorpay_payment_id);
    body.append("razorpay_signature", response.razorpay_signature);
    fetch("/callback", { method: "POST", body: body });
  },
  modal: {
    ondismiss: function () { fetch("/dismiss", { method: "POST" }); }
  }
};
var rzp = new Razorpay(options);
rzp.on("payment.failed", function (response) {
  var body = new URLSearchParams();
  body.append("description", response.error.description);
  fetch("/failed", { method: "POST", body: body });
});
rzp.open();
</script>
</body>
</html>`))
