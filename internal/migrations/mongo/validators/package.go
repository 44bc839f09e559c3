package validators

import "go.mongodb.org/mongo-driver/bson"

var PackageValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"destination",
			"duration",
			"price",
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
				"maxLength": 200,
			},

			"destination": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"duration": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"price": bson.M{
				"bsonType": []string{"double", "int", "long", "decimal"},
				"minimum":  0,
			},

			"description": bson.M{
				"bsonType":  "string",
				"maxLength": 5000,
			},

			"itinerary": bson.M{
				"bsonType": "array",
				"items":    bson.M{"bsonType": "string"},
			},

			"inclusions": bson.M{
				"bsonType": "array",
				"items":    bson.M{"bsonType": "string"},
			},

			"exclusions": bson.M{
				"bsonType": "array",
				"items":    bson.M{"bsonType": "string"},
			},

			"images": bson.M{
				"bsonType": "array",
				"items":    bson.M{"bsonType": "string"},
			},

			"featured": bson.M{
				"bsonType": "bool",
			},

			"active": bson.M{
				"bsonType": "bool",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
