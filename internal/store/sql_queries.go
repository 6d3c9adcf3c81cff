package store

const submissionsTable = "submissions"

var submissionColumns = []string{
	"message_id",
	"entity_id",
	"title",
	"type_named_id",
	"document_function",
	"document_version",
	"from_box_id",
	"to_box_id",
	"custom_document_id",
	"power_of_attorney",
	"created_at",
}
