package validators

import "go.mongodb.org/mongo-driver/bson"

var GalleryValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"url",
			"category",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"url": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"category": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 50,
			},

			"caption": bson.M{
				"bsonType":  "string",
				"maxLength": 300,
			},

			"destination": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},

			"order": bson.M{
				"bsonType": "int",
				"minimum":  0,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
