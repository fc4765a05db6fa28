package supabase_storage

const (
	ObjectEndpoint       = "/storage/v1/object"
	PublicObjectEndpoint = "/storage/v1/object/public"

	APIKeyHeader        = "apikey"
	AuthorizationHeader = "Authorization"
	UpsertHeader        = "x-upsert"
)
