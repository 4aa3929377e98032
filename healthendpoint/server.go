package healthendpoint

import (
	"fmt"
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"
	"golang.org/x/crypto/bcrypt"

	"github.com/fleetscaler/fleetscaler/models"
)

type basicAuthenticationMiddleware struct {
	usernameHash []byte
	passwordHash []byte
}

func (bam *basicAuthenticationMiddleware) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, authOK := r.BasicAuth()
		if !authOK ||
			bcrypt.CompareHashAndPassword(bam.usernameHash, []byte(username)) != nil ||
			bcrypt.CompareHashAndPassword(bam.passwordHash, []byte(password)) != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewServer serves liveness and prometheus metrics. When credentials are
// configured in conf, the endpoints require basic auth.
func NewServer(logger lager.Logger, conf models.HealthConfig, gatherer prometheus.Gatherer) (ifrit.Runner, error) {
	router, err := NewHealthRouter(conf, logger, gatherer)
	if err != nil {
		return nil, err
	}

	addr := fmt.Sprintf("0.0.0.0:%d", conf.Port)
	logger.Info("new-health-server", lager.Data{"addr": addr})
	return http_server.New(addr, router), nil
}

func NewHealthRouter(conf models.HealthConfig, logger lager.Logger, gatherer prometheus.Gatherer) (*mux.Router, error) {
	router := mux.NewRouter()
	metricsHandler := promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})

	liveness := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	})

	if conf.HealthCheckUsername == "" {
		router.Handle("/health", liveness)
		router.PathPrefix("").Handler(metricsHandler)
		return router, nil
	}

	usernameHash, err := bcrypt.GenerateFromPassword([]byte(conf.HealthCheckUsername), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(conf.HealthCheckPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	bam := &basicAuthenticationMiddleware{
		usernameHash: usernameHash,
		passwordHash: passwordHash,
	}
	router.Handle("/health", bam.middleware(liveness))
	router.PathPrefix("").Handler(bam.middleware(metricsHandler))
	return router, nil
}
