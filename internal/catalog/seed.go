package catalog

func seed() []Department {
	return []Department{
		{
			Name: "Pediatriya",
			Doctors: []Doctor{
				{Name: "Aydub", Surname: "Ekberov", ExperienceYears: 3},
				{Name: "Veli", Surname: "Veliyev", ExperienceYears: 5},
				{Name: "Fuad", Surname: "İskenderli", ExperienceYears: 2},
			},
		},
		{
			Name: "Travmatologiya",
			Doctors: []Doctor{
				{Name: "Oruc", Surname: "Burhanov", ExperienceYears: 10},
				{Name: "İbad", Surname: "Aliyev", ExperienceYears: 7},
			},
		},
		{
			Name: "Stomatologiya",
			Doctors: []Doctor{
				{Name: "Temkin", Surname: "İsmayılov", ExperienceYears: 4},
				{Name: "İdrak", Surname: "İskenderli", ExperienceYears: 6},
				{Name: "Aysu", Surname: "Səfərova", ExperienceYears: 9},
				{Name: "Fatime", Surname: "Uğurova", ExperienceYears: 2},
			},
		},
	}
}
