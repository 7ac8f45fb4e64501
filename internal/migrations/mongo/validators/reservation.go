package validators

import "go.mongodb.org/mongo-driver/bson"

// ReservationValidator is deliberately loose on the room and seat fields:
// documents written before the array migration may still hold a bare string
// or null, and the repository normalizes those shapes on read.
var ReservationValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"date",
			"time",
			"name",
			"adults",
			"status",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},

			"date": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{4}-\d{2}-\d{2}$`,
			},

			"time": bson.M{
				"bsonType": "string",
				"pattern":  `^([01][0-9]|2[0-3]):[0-5][0-9]$`,
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"adults": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"children": bson.M{
				"bsonType": "int",
				"minimum":  0,
			},

			"room": bson.M{
				"bsonType": []string{"array", "string", "null"},
			},

			"seat": bson.M{
				"bsonType": []string{"array", "string", "null"},
			},

			"phone": bson.M{
				"bsonType": "string",
			},

			"confirmer": bson.M{
				"bsonType": []string{"string", "null"},
			},

			"memo": bson.M{
				"bsonType": "string",
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"reserved",
					"done",
					"cancelled",
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
