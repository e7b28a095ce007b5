package registry

// Core keys for GlobalRegistry.
const (
	// Extension registries stored in GlobalRegistry
	KeyRegistryCmd     = "registry:cmd"
	KeyRegistryCron    = "registry:cron"
	KeyRegistryAPI     = "registry:api"
	KeyRegistryRoutes  = "registry:routes"
	KeyRegistryGraphQL = "registry:graphql"

	// Module manifests (name -> root dir)
	KeyRegistryModules = "registry:modules"
)
