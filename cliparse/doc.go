/*
Package cliparse parses configuration from CLI flags with environment
variable fallbacks.

Server settings:

  - PORT (-p): listen port (default 8000)
  - DATABASE_DRIVER (-t): sqlite or postgres (default sqlite)
  - DATABASE_URL (-d): sqlite file path or postgres DSN
  - ELECTION_MAP_PASSWORD (-password): entry password for the editor gate
  - CATALOG_PATH (-catalog): optional region/party catalog YAML

Watch mode (headless viewer):

  - -watch: poll the API instead of serving it
  - API_URL (-api): base URL of the results API
  - POLL_INTERVAL (-interval): poll period (default 30s)
*/
package cliparse
