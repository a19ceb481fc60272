package infra_seed

import "github.com/cinerec/core/internal/model"

// Movies is the catalog the service starts with when its backing
// store is empty. IDs are stable so both store flavors agree.
func Movies() []model.Movie {
	return []model.Movie{
		{
			ID:          1,
			Title:       "The Shawshank Redemption",
			Genres:      []string{"Drama"},
			Rating:      9.3,
			Year:        1994,
			Director:    "Frank Darabont",
			Overview:    "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
			Popularity:  88.0,
			VoteAverage: 9.3,
			VoteCount:   24000,
			Budget:      25_000_000,
			Revenue:     28_300_000,
		},
		{
			ID:          2,
			Title:       "The Godfather",
			Genres:      []string{"Crime", "Drama"},
			Rating:      9.2,
			Year:        1972,
			Director:    "Francis Ford Coppola",
			Overview:    "The aging patriarch of an organized crime dynasty transfers control to his reluctant son.",
			Popularity:  105.0,
			VoteAverage: 9.2,
			VoteCount:   18000,
			Budget:      6_000_000,
			Revenue:     245_000_000,
		},
		{
			ID:          3,
			Title:       "Pulp Fiction",
			Genres:      []string{"Crime", "Drama"},
			Rating:      8.9,
			Year:        1994,
			Director:    "Quentin Tarantino",
			Overview:    "The lives of two mob hitmen, a boxer, a gangster and his wife, and a pair of diner bandits intertwine.",
			Popularity:  74.0,
			VoteAverage: 8.9,
			VoteCount:   25000,
			Budget:      8_000_000,
			Revenue:     213_900_000,
		},
		{
			ID:          4,
			Title:       "The Dark Knight",
			Genres:      []string{"Action", "Crime", "Drama"},
			Rating:      9.0,
			Year:        2008,
			Director:    "Christopher Nolan",
			Overview:    "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham.",
			Popularity:  123.0,
			VoteAverage: 9.0,
			VoteCount:   30000,
			Budget:      185_000_000,
			Revenue:     1_004_000_000,
		},
		{
			ID:          5,
			Title:       "Fight Club",
			Genres:      []string{"Drama"},
			Rating:      8.8,
			Year:        1999,
			Director:    "David Fincher",
			Overview:    "An insomniac office worker and a devil-may-care soapmaker form an underground fight club.",
			Popularity:  61.0,
			VoteAverage: 8.8,
			VoteCount:   26000,
			Budget:      63_000_000,
			Revenue:     100_900_000,
		},
		{
			ID:          6,
			Title:       "Inception",
			Genres:      []string{"Action", "Adventure", "Sci-Fi"},
			Rating:      8.8,
			Year:        2010,
			Director:    "Christopher Nolan",
			Overview:    "A thief who steals corporate secrets through dream-sharing technology is given the inverse task.",
			Popularity:  98.0,
			VoteAverage: 8.8,
			VoteCount:   33000,
			Budget:      160_000_000,
			Revenue:     836_800_000,
		},
		{
			ID:          7,
			Title:       "The Matrix",
			Genres:      []string{"Action", "Sci-Fi"},
			Rating:      8.7,
			Year:        1999,
			Director:    "Lana Wachowski",
			Overview:    "A computer programmer discovers that reality as he knows it is a simulation created by machines.",
			Popularity:  79.0,
			VoteAverage: 8.7,
			VoteCount:   23000,
			Budget:      63_000_000,
			Revenue:     463_500_000,
		},
		{
			ID:          8,
			Title:       "Goodfellas",
			Genres:      []string{"Biography", "Crime", "Drama"},
			Rating:      8.7,
			Year:        1990,
			Director:    "Martin Scorsese",
			Overview:    "The story of Henry Hill and his life in the mob, covering his relationship with his wife Karen.",
			Popularity:  45.0,
			VoteAverage: 8.7,
			VoteCount:   11000,
			Budget:      25_000_000,
			Revenue:     46_800_000,
		},
		{
			ID:          9,
			Title:       "The Silence of the Lambs",
			Genres:      []string{"Crime", "Drama", "Thriller"},
			Rating:      8.6,
			Year:        1991,
			Director:    "Jonathan Demme",
			Overview:    "A young FBI cadet must receive the help of an incarcerated and manipulative cannibal killer.",
			Popularity:  9.8,
			VoteAverage: 8.6,
			VoteCount:   14000,
			Budget:      19_000_000,
			Revenue:     272_700_000,
		},
		{
			ID:          10,
			Title:       "Interstellar",
			Genres:      []string{"Adventure", "Drama", "Sci-Fi"},
			Rating:      8.6,
			Year:        2014,
			Director:    "Christopher Nolan",
			Overview:    "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
			Popularity:  140.0,
			VoteAverage: 8.6,
			VoteCount:   32000,
			Budget:      165_000_000,
			Revenue:     677_500_000,
		},
	}
}
