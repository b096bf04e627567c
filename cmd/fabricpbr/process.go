package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/davesmith10/fabricpbr/internal/pipeline"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process a fabric photo into a PBR texture set",
	RunE:  runProcess,
}

func init() {
	processCmd.Flags().StringP("input", "i", "", "Input fabric photo (JPEG or PNG)")
	processCmd.Flags().String("id", "", "Fabric identity (a UUID is minted when omitted)")
	processCmd.Flags().String("out-dir", "data/fabrics", "Output root for generated textures")
	processCmd.Flags().Int("size", 1024, "Texture size in pixels (square)")
	processCmd.Flags().Int("thumb-size", 256, "Thumbnail size in pixels (square)")
	processCmd.Flags().Float64("normal-strength", 0, "Normal map strength (0 = default)")
	processCmd.Flags().Float64("roughness-scale", 0, "Roughness variance scale (0 = default)")
	processCmd.MarkFlagRequired("input")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"textures.dir", "out-dir"},
		{"textures.size", "size"},
		{"textures.thumb_size", "thumb-size"},
		{"textures.normal_strength", "normal-strength"},
		{"textures.roughness_scale", "roughness-scale"},
	}
	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, processCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	id, _ := cmd.Flags().GetString("id")
	if id == "" {
		id = uuid.NewString()
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer f.Close()

	img, err := pipeline.Decode(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	proc := pipeline.New(pipeline.Config{
		OutputRoot:     viper.GetString("textures.dir"),
		TextureSize:    viper.GetInt("textures.size"),
		ThumbSize:      viper.GetInt("textures.thumb_size"),
		NormalStrength: viper.GetFloat64("textures.normal_strength"),
		RoughnessScale: viper.GetFloat64("textures.roughness_scale"),
	})

	result, err := proc.Process(img, id)
	if err != nil {
		return fmt.Errorf("processing %s: %w", inputPath, err)
	}

	fmt.Printf("Processed %dx%d fabric photo → %s\n", img.Width, img.Height, id)
	fmt.Printf("Diffuse:   %s\n", result.DiffusePath)
	fmt.Printf("Normal:    %s\n", result.NormalPath)
	fmt.Printf("Roughness: %s (scalar %.3f)\n", result.RoughnessPath, result.Roughness)
	fmt.Printf("Thumbnail: %s\n", result.ThumbnailPath)
	fmt.Printf("Metalness: %.1f\n", result.Metalness)

	return nil
}
