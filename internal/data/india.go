package data

import "github.com/fabio-scala/poitour-backend/internal/models"

// IndianCities is a curated list of major cities across India for large-scale optimization testing
var IndianCities = []models.NamedLocation{
	// North
	{Name: "Delhi", Location: models.Location{Lat: 28.6139, Lng: 77.2090}},
	{Name: "Jaipur", Location: models.Location{Lat: 26.9124, Lng: 75.7873}},
	{Name: "Lucknow", Location: models.Location{Lat: 26.8467, Lng: 80.9462}},
	{Name: "Kanpur", Location: models.Location{Lat: 26.4499, Lng: 80.3319}},
	{Name: "Ghaziabad", Location: models.Location{Lat: 28.6692, Lng: 77.4538}},
	{Name: "Ludhiana", Location: models.Location{Lat: 30.9010, Lng: 75.8573}},
	{Name: "Agra", Location: models.Location{Lat: 27.1767, Lng: 78.0081}},
	{Name: "Faridabad", Location: models.Location{Lat: 28.4089, Lng: 77.3178}},
	{Name: "Meerut", Location: models.Location{Lat: 28.9845, Lng: 77.7064}},
	{Name: "Varanasi", Location: models.Location{Lat: 25.3176, Lng: 82.9739}},
	{Name: "Srinagar", Location: models.Location{Lat: 34.0837, Lng: 74.7973}},
	{Name: "Amritsar", Location: models.Location{Lat: 31.6340, Lng: 74.8723}},
	{Name: "Allahabad", Location: models.Location{Lat: 25.4358, Lng: 81.8463}},
	{Name: "Chandigarh", Location: models.Location{Lat: 30.7333, Lng: 76.7794}},
	{Name: "Jodhpur", Location: models.Location{Lat: 26.2389, Lng: 73.0243}},
	{Name: "Kota", Location: models.Location{Lat: 25.2138, Lng: 75.8648}},

	// West
	{Name: "Mumbai", Location: models.Location{Lat: 19.0760, Lng: 72.8777}},
	{Name: "Pune", Location: models.Location{Lat: 18.5204, Lng: 73.8567}},
	{Name: "Ahmedabad", Location: models.Location{Lat: 23.0225, Lng: 72.5714}},
	{Name: "Surat", Location: models.Location{Lat: 21.1702, Lng: 72.8311}},
	{Name: "Thane", Location: models.Location{Lat: 19.2183, Lng: 72.9781}},
	{Name: "Vadodara", Location: models.Location{Lat: 22.3072, Lng: 73.1812}},
	{Name: "Rajkot", Location: models.Location{Lat: 22.3039, Lng: 70.8022}},
	{Name: "Nashik", Location: models.Location{Lat: 19.9975, Lng: 73.7898}},
	{Name: "Aurangabad", Location: models.Location{Lat: 19.8762, Lng: 75.3433}},
	{Name: "Navi Mumbai", Location: models.Location{Lat: 19.0330, Lng: 73.0297}},
	{Name: "Nagpur", Location: models.Location{Lat: 21.1458, Lng: 79.0882}},

	// South
	{Name: "Bangalore", Location: models.Location{Lat: 12.9716, Lng: 77.5946}},
	{Name: "Chennai", Location: models.Location{Lat: 13.0827, Lng: 80.2707}},
	{Name: "Hyderabad", Location: models.Location{Lat: 17.3850, Lng: 78.4867}},
	{Name: "Visakhapatnam", Location: models.Location{Lat: 17.6868, Lng: 83.2185}},
	{Name: "Coimbatore", Location: models.Location{Lat: 11.0168, Lng: 76.9558}},
	{Name: "Vijayawada", Location: models.Location{Lat: 16.5062, Lng: 80.6480}},
	{Name: "Madurai", Location: models.Location{Lat: 9.9252, Lng: 78.1198}},
	{Name: "Mysore", Location: models.Location{Lat: 12.2958, Lng: 76.6394}},
	{Name: "Kochi", Location: models.Location{Lat: 9.9312, Lng: 76.2673}},
	{Name: "Thiruvananthapuram", Location: models.Location{Lat: 8.5241, Lng: 76.9366}},

	// East & Central
	{Name: "Kolkata", Location: models.Location{Lat: 22.5726, Lng: 88.3639}},
	{Name: "Indore", Location: models.Location{Lat: 22.7196, Lng: 75.8577}},
	{Name: "Bhopal", Location: models.Location{Lat: 23.2599, Lng: 77.4126}},
	{Name: "Patna", Location: models.Location{Lat: 25.5941, Lng: 85.1376}},
	{Name: "Ranchi", Location: models.Location{Lat: 23.3441, Lng: 85.3096}},
	{Name: "Dhanbad", Location: models.Location{Lat: 23.7957, Lng: 86.4304}},
	{Name: "Howrah", Location: models.Location{Lat: 22.5958, Lng: 88.2636}},
	{Name: "Gwalior", Location: models.Location{Lat: 26.2183, Lng: 78.1828}},
	{Name: "Jabalpur", Location: models.Location{Lat: 23.1815, Lng: 79.9864}},
	{Name: "Guwahati", Location: models.Location{Lat: 26.1445, Lng: 91.7362}},
	{Name: "Bhubaneswar", Location: models.Location{Lat: 20.2961, Lng: 85.8245}},
	{Name: "Raipur", Location: models.Location{Lat: 21.2514, Lng: 81.6296}},
}

func GetAllIndiaLocations() []models.Location {
	locs := make([]models.Location, len(IndianCities))
	for i, c := range IndianCities {
		locs[i] = models.Location{Lat: c.Lat, Lng: c.Lng}
	}
	return locs
}
