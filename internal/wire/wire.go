package wire

import (
	"homestay-client/internal/api"
	"homestay-client/internal/booking"
	"homestay-client/internal/data/entity"
	"homestay-client/internal/nav"
	"homestay-client/internal/payment"
	"homestay-client/internal/store"
	"homestay-client/pkg/keystore"
	"homestay-client/pkg/notice"
	"homestay-client/pkg/utils"

	"go.uber.org/zap"
)

// App holds the wired dependency graph.
type App struct {
	Client    *api.Client
	Store     *store.Store
	Navigator *nav.Navigator
	Wizard    *booking.Wizard
	Notices   *notice.Center
}

// roleSource breaks the session/navigator cycle: the navigator asks
// for the role through this indirection, bound after the stores exist.
type roleSource struct {
	store *store.Store
}

func (r *roleSource) CurrentRole() (entity.Role, bool) {
	if r.store == nil {
		return "", false
	}
	return r.store.Session.CurrentRole()
}

// Wiring initializes all dependencies.
func Wiring(config *utils.Config, logger *zap.Logger) *App {
	notices := notice.NewCenter(notice.DefaultDuration)
	keys := keystore.New(config.Session.TokenPath, config.Session.TokenSecret)

	client := api.NewClient(config, logger)

	roles := &roleSource{}
	navigator := nav.NewNavigator(roles, logger)

	stores := store.NewStore(client, keys, notices, navigator, logger)
	roles.store = stores

	// A 401 anywhere tears the session down and lands on login.
	client.OnUnauthorized(stores.Session.HandleUnauthorized)

	gateway := payment.NewRazorpayGateway(config, logger)
	wizard := booking.NewWizard(stores.Room, stores.Booking, client, gateway, roles, navigator, notices, logger)

	return &App{
		Client:    client,
		Store:     stores,
		Navigator: navigator,
		Wizard:    wizard,
		Notices:   notices,
	}
}
