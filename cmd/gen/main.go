package main

import (
	"tetatete/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.ProfileModel{},
		model.ProfileImageModel{},
		model.ProfileLanguageModel{},
		model.FriendsProfileModel{},
		model.LoveProfileModel{},
		model.WorkProfileModel{},
		model.MatchProposalModel{},
		model.ChatModel{},
		model.MessageModel{},
		model.NotificationModel{},
		model.GenderModel{},
		model.LocationModel{},
		model.LanguageModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
