// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP plumbing shared by the handlers:
request logging, CORS, no-store cache headers, and JSON helpers
(JSONResponse, ErrorResponse, ParseJSONBody).
*/
package middleware
