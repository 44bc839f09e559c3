package validators

import "go.mongodb.org/mongo-driver/bson"

var NewsletterValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"email",
			"subscribed_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"email": bson.M{
				"bsonType": "string",
			},

			"subscribed_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
