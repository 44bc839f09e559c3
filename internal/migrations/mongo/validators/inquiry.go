package validators

import "go.mongodb.org/mongo-driver/bson"

var InquiryValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"email",
			"message",
			"status",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"email": bson.M{
				"bsonType": "string",
			},

			"phone": bson.M{
				"bsonType":  "string",
				"minLength": 10,
				"maxLength": 20,
			},

			"package_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"message": bson.M{
				"bsonType":  "string",
				"minLength": 10,
				"maxLength": 5000,
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"new",
					"read",
					"responded",
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
