package handler

// Route pattern constants for chi router registration.
const (
	// RouteHealth is the health check route.
	RouteHealth = "/health"
	// RouteSitemap is the sitemap route.
	RouteSitemap = "/sitemap.xml"
	// RouteRobots is the robots.txt route.
	RouteRobots = "/robots.txt"

	// RouteAPIPrefix is the prefix of all JSON API routes.
	RouteAPIPrefix = "/api/v1"
	// RouteAPIStatus is the API status route.
	RouteAPIStatus = "/status"
	// RouteAPILanguages lists supported languages.
	RouteAPILanguages = "/languages"
	// RouteAPIPages resolves a path to its language context.
	RouteAPIPages = "/pages"
	// RouteAPIHreflang returns the hreflang links of a path.
	RouteAPIHreflang = "/pages/hreflang"
	// RouteAPIEvents lists recent warnings and errors.
	RouteAPIEvents = "/events"
)
