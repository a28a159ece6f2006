package app

import (
	"go.opentelemetry.io/otel/metric"

	"github.com/domgiordano/xomper-back-end/internal/email"
	"github.com/domgiordano/xomper-back-end/internal/handler"
	apphttp "github.com/domgiordano/xomper-back-end/internal/http"
	"github.com/domgiordano/xomper-back-end/internal/league"
	"github.com/domgiordano/xomper-back-end/internal/player"
	"github.com/domgiordano/xomper-back-end/internal/user"
)

// UserHandlers returns the user handler set.
func (c *Container) UserHandlers() (*user.Handlers, error) {
	if c.userHandlers != nil {
		return c.userHandlers, nil
	}
	useCase, err := c.UserUseCase()
	if err != nil {
		return nil, err
	}
	c.userHandlers = user.NewHandlers(useCase, c.Logger())
	return c.userHandlers, nil
}

// LeagueUseCase returns the league use case instance.
func (c *Container) LeagueUseCase() (*league.UseCase, error) {
	if c.leagueUseCase != nil {
		return c.leagueUseCase, nil
	}
	st, err := c.Store()
	if err != nil {
		return nil, err
	}
	c.leagueUseCase = league.NewUseCase(st, c.Sleeper(), c.config.LeagueTable, c.Logger())
	return c.leagueUseCase, nil
}

// PlayerUseCase returns the player use case instance.
func (c *Container) PlayerUseCase() (*player.UseCase, error) {
	if c.playerUseCase != nil {
		return c.playerUseCase, nil
	}
	st, err := c.Store()
	if err != nil {
		return nil, err
	}
	c.playerUseCase = player.NewUseCase(st, c.Sleeper(), c.config.PlayerTable, c.Logger())
	return c.playerUseCase, nil
}

// EmailHandlers returns the email handler set.
func (c *Container) EmailHandlers() (*email.Handlers, error) {
	if c.emailHandlers != nil {
		return c.emailHandlers, nil
	}
	sender, err := c.EmailSender()
	if err != nil {
		return nil, err
	}
	templates := email.NewTemplates(c.config.SiteURL)
	c.emailHandlers = email.NewHandlers(sender, templates, c.Logger())
	return c.emailHandlers, nil
}

// HTTPServer returns the API server instance, initializing every dependency
// behind the routes.
func (c *Container) HTTPServer() (*apphttp.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server instance, or nil when metrics are
// disabled.
func (c *Container) MetricsServer() (*apphttp.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		if provider == nil {
			return
		}
		c.metricsServer = apphttp.NewMetricsServer(c.config, c.Logger(), provider)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// initHTTPServer assembles the API server from the handler sets.
func (c *Container) initHTTPServer() (*apphttp.Server, error) {
	logger := c.Logger()

	gate, err := c.Authorizer()
	if err != nil {
		return nil, err
	}
	business, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}

	userHandlers, err := c.UserHandlers()
	if err != nil {
		return nil, err
	}
	leagueUseCase, err := c.LeagueUseCase()
	if err != nil {
		return nil, err
	}
	playerUseCase, err := c.PlayerUseCase()
	if err != nil {
		return nil, err
	}
	emailHandlers, err := c.EmailHandlers()
	if err != nil {
		return nil, err
	}

	leagueHandlers := league.NewHandlers(leagueUseCase, logger)
	playerHandlers := player.NewHandlers(playerUseCase, logger)

	routes := apphttp.Routes{
		UserLogin:  handler.Wrap("user_login", logger, userHandlers.Login),
		UserGet:    handler.Wrap("get_user_data", logger, userHandlers.Get),
		UserUpdate: handler.Wrap("update_user_data", logger, userHandlers.Update),

		LeagueGet:    handler.Wrap("get_league_data", logger, leagueHandlers.Get),
		LeagueUpdate: handler.Wrap("update_league_data", logger, leagueHandlers.Update),

		PlayerGet:    handler.Wrap("get_player_data", logger, playerHandlers.Get),
		PlayerUpdate: handler.Wrap("update_player_data", logger, playerHandlers.UpdateAll),

		EmailRuleProposal: handler.Wrap("email_rule_proposal", logger, emailHandlers.SendRuleProposal),
		EmailRuleAccept:   handler.Wrap("email_rule_accept", logger, emailHandlers.SendRuleAccepted),
		EmailRuleDeny:     handler.Wrap("email_rule_deny", logger, emailHandlers.SendRuleDenied),
		EmailTaxi:         handler.Wrap("email_taxi", logger, emailHandlers.SendTaxiSteal),
	}

	var meterProvider metric.MeterProvider
	if provider, err := c.MetricsProvider(); err == nil && provider != nil {
		meterProvider = provider.MeterProvider()
	}

	return apphttp.NewServer(c.config, logger, gate, business, meterProvider, routes), nil
}
