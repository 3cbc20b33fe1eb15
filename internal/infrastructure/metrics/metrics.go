// Package metrics expone contadores Prometheus del ciclo de vida de pedidos.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreated pedidos creados desde el arranque.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "farmacia_orders_created_total",
		Help: "Pedidos creados.",
	})

	// OrdersDecided decisiones aplicadas, etiquetadas por estado destino.
	OrdersDecided = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "farmacia_orders_decided_total",
		Help: "Decisiones de pedidos aplicadas (accepted/refused).",
	}, []string{"status"})

	// InsufficientStock intentos de aceptación rechazados por stock insuficiente.
	InsufficientStock = promauto.NewCounter(prometheus.CounterOpts{
		Name: "farmacia_orders_insufficient_stock_total",
		Help: "Aceptaciones fallidas por stock insuficiente.",
	})
)
