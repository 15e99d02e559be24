package configs

// AMQP configures the decision-event publisher. An empty URL disables
// publishing entirely; the service then runs with a no-op notifier.
type AMQP struct {
	// URL is an amqp:// connection string.
	URL string `env:"URL"`
	// Exchange is the topic exchange decision events are published to.
	Exchange string `env:"EXCHANGE" envDefault:"promo.events"`
}
